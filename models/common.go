package models

import (
	"strings"
	"time"
)

// ConfigStatus reports which workflow credentials are present, never their values
type ConfigStatus struct {
	AccountID     bool `json:"accountId"`
	WorkflowID    bool `json:"workflowId"`
	AccessToken   bool `json:"accessToken"`
	AllConfigured bool `json:"allConfigured"`
}

// CredentialsForm represents a request to replace workflow credentials.
// Blank fields leave the current value untouched.
type CredentialsForm struct {
	AccountID   string `json:"accountId"`
	WorkflowID  string `json:"workflowId"`
	AccessToken string `json:"accessToken"`
}

// IsEmpty returns true if no field carries a non-blank value
func (f *CredentialsForm) IsEmpty() bool {
	return strings.TrimSpace(f.AccountID) == "" &&
		strings.TrimSpace(f.WorkflowID) == "" &&
		strings.TrimSpace(f.AccessToken) == ""
}

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate parses a YYYY-MM-DD string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Field + ": " + err.Message
	}
	return messages
}

// Error implements the error interface so validation failures can be returned directly
func (ve ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(ve.GetMessages(), ", ")
}

// CredentialsNote is returned with every credentials update
const CredentialsNote = "These changes are temporary and will reset when the server restarts."

// ConfigUpdateResult represents the outcome of a credentials update
type ConfigUpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Note    string `json:"note"`
}
