package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/permit-tracker/ids"
	"github.com/blogem/permit-tracker/models"
)

// PermitRepository interface defines permit storage operations
type PermitRepository interface {
	GetAll(ctx context.Context) ([]models.Permit, error)
	GetByID(ctx context.Context, id string) (*models.Permit, error)
	Create(ctx context.Context, permit *models.Permit) error
	DeleteByProjectName(ctx context.Context, projectName string) (int64, error)
	Count(ctx context.Context) (int, error)
}

// permitRepository implements PermitRepository interface
type permitRepository struct {
	db *sql.DB
}

// NewPermitRepository creates a new permit repository
func NewPermitRepository(db *sql.DB) PermitRepository {
	return &permitRepository{db: db}
}

// GetAll retrieves all permits, most recently created first
func (r *permitRepository) GetAll(ctx context.Context) ([]models.Permit, error) {
	query := `
		SELECT id, project_name, location, applicant, submitted_date,
		       status, progress, agency_routing
		FROM permits
		ORDER BY seq DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query permits: %w", err)
	}
	defer rows.Close()

	permits := []models.Permit{}
	for rows.Next() {
		permit, err := scanPermit(rows)
		if err != nil {
			return nil, err
		}
		permits = append(permits, *permit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating permits: %w", err)
	}

	return permits, nil
}

// GetByID retrieves a permit by its exact ID
func (r *permitRepository) GetByID(ctx context.Context, id string) (*models.Permit, error) {
	query := `
		SELECT id, project_name, location, applicant, submitted_date,
		       status, progress, agency_routing
		FROM permits
		WHERE id = ?
	`

	permit, err := scanPermit(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("permit %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return permit, nil
}

// Create stores a new permit. The ID and submitted date are assigned here
// unless the caller already set them (seed data does).
func (r *permitRepository) Create(ctx context.Context, permit *models.Permit) error {
	query := `
		INSERT INTO permits (id, project_name, location, applicant, submitted_date,
		                     status, progress, agency_routing)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	if permit.ID == "" {
		permit.ID = ids.NewPermitID(now)
	}
	if permit.SubmittedDate == "" {
		permit.SubmittedDate = models.FormatDate(now)
	} else if _, err := models.ParseDate(permit.SubmittedDate); err != nil {
		return fmt.Errorf("invalid submitted date %q: %w", permit.SubmittedDate, err)
	}
	if permit.AgencyRouting == nil {
		permit.AgencyRouting = []string{}
	}

	routing, err := json.Marshal(permit.AgencyRouting)
	if err != nil {
		return fmt.Errorf("failed to encode agency routing: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		permit.ID,
		permit.ProjectName,
		permit.Location,
		permit.Applicant,
		permit.SubmittedDate,
		string(permit.Status),
		permit.Progress,
		string(routing),
	)
	if err != nil {
		return fmt.Errorf("failed to create permit: %w", err)
	}

	return nil
}

// DeleteByProjectName removes every permit whose project name matches exactly
func (r *permitRepository) DeleteByProjectName(ctx context.Context, projectName string) (int64, error) {
	query := `DELETE FROM permits WHERE project_name = ?`

	result, err := r.db.ExecContext(ctx, query, projectName)
	if err != nil {
		return 0, fmt.Errorf("failed to delete permits: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// Count returns the total number of permits
func (r *permitRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM permits`

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count permits: %w", err)
	}

	return count, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanPermit(s scanner) (*models.Permit, error) {
	var permit models.Permit
	var status string
	var routing string

	err := s.Scan(
		&permit.ID,
		&permit.ProjectName,
		&permit.Location,
		&permit.Applicant,
		&permit.SubmittedDate,
		&status,
		&permit.Progress,
		&routing,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan permit: %w", err)
	}

	permit.Status = models.PermitStatus(status)
	if err := json.Unmarshal([]byte(routing), &permit.AgencyRouting); err != nil {
		return nil, fmt.Errorf("failed to decode agency routing for permit %s: %w", permit.ID, err)
	}

	return &permit, nil
}
