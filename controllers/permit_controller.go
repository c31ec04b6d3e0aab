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

// PermitController handles permit requests
type PermitController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewPermitController creates a new permit controller
func NewPermitController(services *services.Services, logger *zap.Logger) *PermitController {
	return &PermitController{
		services: services,
		logger:   logger.Named("permits"),
	}
}

// Index handles GET /permits
func (c *PermitController) Index(w http.ResponseWriter, r *http.Request) {
	permits, err := c.services.Permit.List(r.Context())
	if err != nil {
		renderServerError(w, r, c.logger, "Failed to fetch permits", err)
		return
	}
	if permits == nil {
		permits = []models.Permit{}
	}
	renderJSON(w, http.StatusOK, permits)
}

// Show handles GET /permits/{id}
func (c *PermitController) Show(w http.ResponseWriter, r *http.Request) {
	permit, err := c.services.Permit.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			renderError(w, http.StatusNotFound, "Permit not found")
			return
		}
		renderServerError(w, r, c.logger, "Failed to fetch permit", err)
		return
	}
	renderJSON(w, http.StatusOK, permit)
}

// Create handles POST /permits
func (c *PermitController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.PermitForm
	if !decodeJSON(w, r, &form) {
		return
	}

	result, err := c.services.Permit.Submit(r.Context(), &form)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			renderError(w, http.StatusBadRequest, "Validation failed", verrs...)
			return
		}
		renderServerError(w, r, c.logger, "Failed to create permit", err)
		return
	}

	renderJSON(w, http.StatusCreated, result)
}

// Reset handles POST /permits/reset
func (c *PermitController) Reset(w http.ResponseWriter, r *http.Request) {
	if _, err := c.services.Permit.ResetDemo(r.Context()); err != nil {
		renderServerError(w, r, c.logger, "Failed to reset permits", err)
		return
	}
	renderJSON(w, http.StatusOK, successResponse{Success: true})
}
