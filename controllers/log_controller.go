package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blogem/permit-tracker/models"
	"github.com/blogem/permit-tracker/repositories"
	"github.com/blogem/permit-tracker/services"
)

// LogController handles workflow audit log requests
type LogController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewLogController creates a new log controller
func NewLogController(services *services.Services, logger *zap.Logger) *LogController {
	return &LogController{
		services: services,
		logger:   logger.Named("logs"),
	}
}

// Index handles GET /logs
func (c *LogController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Log.List(r.Context())
	if err != nil {
		renderServerError(w, r, c.logger, "Failed to fetch logs", err)
		return
	}
	renderEntries(w, entries)
}

// ForPermit handles GET /permits/{id}/logs
func (c *LogController) ForPermit(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Log.ListForPermit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			renderError(w, http.StatusNotFound, "Permit not found")
			return
		}
		renderServerError(w, r, c.logger, "Failed to fetch logs", err)
		return
	}
	renderEntries(w, entries)
}

// Clear handles DELETE /logs
func (c *LogController) Clear(w http.ResponseWriter, r *http.Request) {
	if err := c.services.Log.Clear(r.Context()); err != nil {
		renderServerError(w, r, c.logger, "Failed to clear logs", err)
		return
	}
	renderJSON(w, http.StatusOK, successResponse{Success: true})
}

func renderEntries(w http.ResponseWriter, entries []models.APILogEntry) {
	if entries == nil {
		entries = []models.APILogEntry{}
	}
	renderJSON(w, http.StatusOK, entries)
}
