package services

import (
	"context"
	"fmt"

	"github.com/blogem/permit-tracker/models"
	"github.com/blogem/permit-tracker/repositories"
)

// LogService interface defines access to the workflow audit log
type LogService interface {
	List(ctx context.Context) ([]models.APILogEntry, error)
	ListForPermit(ctx context.Context, permitID string) ([]models.APILogEntry, error)
	Clear(ctx context.Context) error
}

type logService struct {
	auditRepo  repositories.AuditRepository
	permitRepo repositories.PermitRepository
}

// NewLogService creates a new log service
func NewLogService(auditRepo repositories.AuditRepository, permitRepo repositories.PermitRepository) LogService {
	return &logService{
		auditRepo:  auditRepo,
		permitRepo: permitRepo,
	}
}

func (s *logService) List(ctx context.Context) ([]models.APILogEntry, error) {
	return s.auditRepo.GetAll(ctx)
}

// ListForPermit returns the entries of one permit; the permit must exist
func (s *logService) ListForPermit(ctx context.Context, permitID string) ([]models.APILogEntry, error) {
	if _, err := s.permitRepo.GetByID(ctx, permitID); err != nil {
		return nil, err
	}
	return s.auditRepo.GetByPermitID(ctx, permitID)
}

func (s *logService) Clear(ctx context.Context) error {
	if err := s.auditRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear logs: %w", err)
	}
	return nil
}
