package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/blogem/permit-tracker/metrics"
	"github.com/blogem/permit-tracker/models"
	"github.com/blogem/permit-tracker/repositories"
	"github.com/blogem/permit-tracker/userctx"
	"github.com/blogem/permit-tracker/workflow"
)

// PermitService interface defines permit intake business logic
type PermitService interface {
	Submit(ctx context.Context, form *models.PermitForm) (*models.SubmissionResult, error)
	List(ctx context.Context) ([]models.Permit, error)
	Get(ctx context.Context, id string) (*models.Permit, error)
	ResetDemo(ctx context.Context) (int64, error)
}

// permitService implements PermitService interface
type permitService struct {
	permitRepo repositories.PermitRepository
	auditRepo  repositories.AuditRepository
	trigger    workflow.Trigger
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewPermitService creates a new permit service
func NewPermitService(permitRepo repositories.PermitRepository, auditRepo repositories.AuditRepository, trigger workflow.Trigger, logger *zap.Logger, m *metrics.Metrics) PermitService {
	return &permitService{
		permitRepo: permitRepo,
		auditRepo:  auditRepo,
		trigger:    trigger,
		logger:     logger.Named("permits"),
		metrics:    m,
	}
}

// Submit validates and stores a permit, triggers its workflow and records
// the attempt in the audit log. A failed trigger does not fail the
// submission; the permit is kept and the outcome is reported in the result.
func (s *permitService) Submit(ctx context.Context, form *models.PermitForm) (*models.SubmissionResult, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	permit := form.ToPermit()
	if err := s.permitRepo.Create(ctx, permit); err != nil {
		return nil, fmt.Errorf("failed to create permit: %w", err)
	}

	result := s.trigger.Trigger(ctx, workflow.TriggerRequest{
		ProjectName:    permit.ProjectName,
		Applicant:      permit.Applicant,
		Agencies:       permit.AgencyRouting,
		SubmitterEmail: userctx.GetSubmitterEmail(ctx),
	})

	entry := &models.APILogEntry{
		PermitID:       permit.ID,
		ProjectName:    permit.ProjectName,
		Endpoint:       models.WorkflowLogEndpoint,
		Method:         models.WorkflowLogMethod,
		RequestPayload: result.PayloadJSON(),
		ResponseStatus: result.ResponseStatus,
		ResponseBody:   result.ResponseBody,
		Success:        result.Success() && !result.SimulationMode(),
		SimulationMode: result.SimulationMode(),
	}
	// The trail must not lose an attempt because the client went away
	if err := s.auditRepo.Create(context.WithoutCancel(ctx), entry); err != nil {
		// The permit stays stored; only the audit trail misses this attempt
		s.logger.Error("failed to record workflow log entry",
			zap.String("permit_id", permit.ID),
			zap.Error(err))
	}

	if s.metrics != nil {
		s.metrics.PermitsSubmitted.Inc()
	}

	s.logger.Info("permit submitted",
		zap.String("permit_id", permit.ID),
		zap.String("outcome", result.Outcome.String()),
		zap.String("instance_id", result.InstanceID))

	return &models.SubmissionResult{
		Permit: permit,
		Maestro: models.MaestroSummary{
			Triggered:      result.Triggered(),
			InstanceID:     result.InstanceID,
			SimulationMode: result.SimulationMode(),
		},
	}, nil
}

// List retrieves all permits, newest first
func (s *permitService) List(ctx context.Context) ([]models.Permit, error) {
	return s.permitRepo.GetAll(ctx)
}

// Get retrieves a permit by ID
func (s *permitService) Get(ctx context.Context, id string) (*models.Permit, error) {
	return s.permitRepo.GetByID(ctx, id)
}

// ResetDemo removes every permit created by the intake demo
func (s *permitService) ResetDemo(ctx context.Context) (int64, error) {
	removed, err := s.permitRepo.DeleteByProjectName(ctx, models.DemoProjectName)
	if err != nil {
		return 0, fmt.Errorf("failed to reset demo permits: %w", err)
	}
	s.logger.Info("demo permits reset", zap.Int64("removed", removed))
	return removed, nil
}
