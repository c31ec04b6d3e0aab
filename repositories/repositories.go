package repositories

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a lookup by ID matches nothing
var ErrNotFound = errors.New("not found")

// Repositories struct holds all repository interfaces
type Repositories struct {
	Permit PermitRepository
	Audit  AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Permit: NewPermitRepository(db),
		Audit:  NewAuditRepository(db),
	}
}
