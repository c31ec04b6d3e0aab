package services

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/blogem/permit-tracker/config"
	"github.com/blogem/permit-tracker/models"
)

// ErrNoConfigValues is returned when a credentials update carries no values
var ErrNoConfigValues = errors.New("no configuration values supplied")

// ConfigService interface defines the runtime credentials surface
type ConfigService interface {
	Status() models.ConfigStatus
	Update(form *models.CredentialsForm) (*models.ConfigUpdateResult, error)
}

type configService struct {
	creds  *config.Credentials
	logger *zap.Logger
}

// NewConfigService creates a new config service
func NewConfigService(creds *config.Credentials, logger *zap.Logger) ConfigService {
	return &configService{
		creds:  creds,
		logger: logger.Named("config"),
	}
}

// Status reports which credentials are present without revealing them
func (s *configService) Status() models.ConfigStatus {
	return s.creds.Status()
}

// Update merges the non-blank values of form into the live credentials
func (s *configService) Update(form *models.CredentialsForm) (*models.ConfigUpdateResult, error) {
	if form.IsEmpty() {
		return nil, ErrNoConfigValues
	}

	updated := s.creds.Merge(*form)
	s.logger.Info("workflow credentials updated", zap.Strings("fields", updated))

	return &models.ConfigUpdateResult{
		Success: true,
		Message: "Updated: " + strings.Join(updated, ", "),
		Note:    models.CredentialsNote,
	}, nil
}
