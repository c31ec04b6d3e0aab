package controllers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/permit-tracker/models"
	"github.com/blogem/permit-tracker/services"
)

// ConfigController handles the runtime credentials surface
type ConfigController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewConfigController creates a new config controller
func NewConfigController(services *services.Services, logger *zap.Logger) *ConfigController {
	return &ConfigController{
		services: services,
		logger:   logger.Named("config"),
	}
}

// Status handles GET /config/status
func (c *ConfigController) Status(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, c.services.Config.Status())
}

// Update handles POST /config/external-workflow
func (c *ConfigController) Update(w http.ResponseWriter, r *http.Request) {
	var form models.CredentialsForm
	if !decodeJSON(w, r, &form) {
		return
	}

	result, err := c.services.Config.Update(&form)
	if err != nil {
		if errors.Is(err, services.ErrNoConfigValues) {
			renderError(w, http.StatusBadRequest, err.Error())
			return
		}
		renderServerError(w, r, c.logger, "Failed to update configuration", err)
		return
	}
	renderJSON(w, http.StatusOK, result)
}
