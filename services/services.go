package services

import (
	"go.uber.org/zap"

	"github.com/blogem/permit-tracker/config"
	"github.com/blogem/permit-tracker/metrics"
	"github.com/blogem/permit-tracker/repositories"
	"github.com/blogem/permit-tracker/workflow"
)

// Services holds all service instances
type Services struct {
	Permit PermitService
	Log    LogService
	Config ConfigService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, trigger workflow.Trigger, creds *config.Credentials, logger *zap.Logger, m *metrics.Metrics) *Services {
	return &Services{
		Permit: NewPermitService(repos.Permit, repos.Audit, trigger, logger, m),
		Log:    NewLogService(repos.Audit, repos.Permit),
		Config: NewConfigService(creds, logger),
	}
}
