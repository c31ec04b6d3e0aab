package config

import (
	"strings"
	"sync"

	"github.com/blogem/permit-tracker/models"
)

// Credentials holds the workflow API credentials for the process lifetime.
// They can be replaced at runtime but are never written anywhere durable.
type Credentials struct {
	mu          sync.RWMutex
	accountID   string
	workflowID  string
	accessToken string
}

// NewCredentials creates a credentials holder with initial values
func NewCredentials(accountID, workflowID, accessToken string) *Credentials {
	return &Credentials{
		accountID:   strings.TrimSpace(accountID),
		workflowID:  strings.TrimSpace(workflowID),
		accessToken: strings.TrimSpace(accessToken),
	}
}

// AccessToken returns the current bearer token, empty if not configured
func (c *Credentials) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// Status reports which credentials are present
func (c *Credentials) Status() models.ConfigStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := models.ConfigStatus{
		AccountID:   c.accountID != "",
		WorkflowID:  c.workflowID != "",
		AccessToken: c.accessToken != "",
	}
	status.AllConfigured = status.AccountID && status.WorkflowID && status.AccessToken
	return status
}

// Merge replaces each credential for which the form carries a non-blank value.
// It returns the labels of the fields that were updated, in form order.
func (c *Credentials) Merge(form models.CredentialsForm) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var updated []string
	if v := strings.TrimSpace(form.AccountID); v != "" {
		c.accountID = v
		updated = append(updated, "Account ID")
	}
	if v := strings.TrimSpace(form.WorkflowID); v != "" {
		c.workflowID = v
		updated = append(updated, "Workflow ID")
	}
	if v := strings.TrimSpace(form.AccessToken); v != "" {
		c.accessToken = v
		updated = append(updated, "Access Token")
	}
	return updated
}
