package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/permit-tracker/models"
)

// AuditRepository handles the workflow call audit trail
type AuditRepository interface {
	Create(ctx context.Context, entry *models.APILogEntry) error
	GetAll(ctx context.Context) ([]models.APILogEntry, error)
	GetByPermitID(ctx context.Context, permitID string) ([]models.APILogEntry, error)
	DeleteAll(ctx context.Context) error
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry, assigning its ID and timestamp
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.APILogEntry) error {
	query := `
		INSERT INTO api_logs (id, timestamp, permit_id, project_name, endpoint, method,
		                      request_payload, response_status, response_body,
		                      success, simulation_mode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	entry.ID = uuid.New().String()
	entry.Timestamp = time.Now().UTC()

	var status sql.NullInt64
	if entry.ResponseStatus != nil {
		status = sql.NullInt64{Int64: int64(*entry.ResponseStatus), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Timestamp,
		entry.PermitID,
		entry.ProjectName,
		entry.Endpoint,
		entry.Method,
		nullableJSON(entry.RequestPayload),
		status,
		nullableJSON(entry.ResponseBody),
		entry.Success,
		entry.SimulationMode,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	return nil
}

// GetAll retrieves every audit log entry, most recent first
func (r *sqliteAuditRepository) GetAll(ctx context.Context) ([]models.APILogEntry, error) {
	query := `
		SELECT id, timestamp, permit_id, project_name, endpoint, method,
		       request_payload, response_status, response_body,
		       success, simulation_mode
		FROM api_logs
		ORDER BY seq DESC
	`
	return r.query(ctx, query)
}

// GetByPermitID retrieves the audit trail of one permit, most recent first
func (r *sqliteAuditRepository) GetByPermitID(ctx context.Context, permitID string) ([]models.APILogEntry, error) {
	query := `
		SELECT id, timestamp, permit_id, project_name, endpoint, method,
		       request_payload, response_status, response_body,
		       success, simulation_mode
		FROM api_logs
		WHERE permit_id = ?
		ORDER BY seq DESC
	`
	return r.query(ctx, query, permitID)
}

// DeleteAll empties the audit log
func (r *sqliteAuditRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM api_logs`); err != nil {
		return fmt.Errorf("failed to clear audit log: %w", err)
	}
	return nil
}

func (r *sqliteAuditRepository) query(ctx context.Context, query string, args ...any) ([]models.APILogEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := []models.APILogEntry{}
	for rows.Next() {
		var entry models.APILogEntry
		var requestPayload, responseBody sql.NullString
		var status sql.NullInt64

		err := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&entry.PermitID,
			&entry.ProjectName,
			&entry.Endpoint,
			&entry.Method,
			&requestPayload,
			&status,
			&responseBody,
			&entry.Success,
			&entry.SimulationMode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}

		// Convert NULL values to nil
		if requestPayload.Valid {
			entry.RequestPayload = json.RawMessage(requestPayload.String)
		}
		if responseBody.Valid {
			entry.ResponseBody = json.RawMessage(responseBody.String)
		}
		if status.Valid {
			code := int(status.Int64)
			entry.ResponseStatus = &code
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}

func nullableJSON(raw json.RawMessage) sql.NullString {
	if len(raw) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}
