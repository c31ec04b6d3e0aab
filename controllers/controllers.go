package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/blogem/permit-tracker/models"
	"github.com/blogem/permit-tracker/services"
)

// maxBodyBytes caps every JSON request body
const maxBodyBytes = 1 << 20

// errorResponse is the body of every non-2xx response
type errorResponse struct {
	Error   string                   `json:"error"`
	Details []models.ValidationError `json:"details,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// renderJSON writes data as JSON with the given status code
func renderJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// renderError writes an error body with optional validation details
func renderError(w http.ResponseWriter, statusCode int, message string, details ...models.ValidationError) {
	renderJSON(w, statusCode, errorResponse{Error: message, Details: details})
}

// renderServerError logs cause and answers with a generic 500
func renderServerError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, message string, cause error) {
	logger.Error(message,
		zap.Error(cause),
		zap.String("request_id", middleware.GetReqID(r.Context())))
	renderError(w, http.StatusInternalServerError, message)
}

// decodeJSON reads a size-capped JSON body into dst. On false the error
// response has been written and the caller just returns.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "(root)"
		}
		renderError(w, http.StatusBadRequest, "Validation failed", models.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("Invalid type. Expected: %s, given: %s", typeErr.Type.String(), typeErr.Value),
		})
	case errors.As(err, &maxBytesErr):
		renderError(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		renderError(w, http.StatusBadRequest, "Malformed JSON request body")
	default:
		renderError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	return false
}

// Controllers holds all controller instances
type Controllers struct {
	Permit *PermitController
	Log    *LogController
	Config *ConfigController
	Health *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, logger *zap.Logger) *Controllers {
	return &Controllers{
		Permit: NewPermitController(services, logger),
		Log:    NewLogController(services, logger),
		Config: NewConfigController(services, logger),
		Health: NewHealthController(),
	}
}
