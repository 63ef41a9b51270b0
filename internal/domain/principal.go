package domain

import "time"

// PrincipalStatus represents lifecycle states for an account.
type PrincipalStatus string

const (
	PrincipalStatusActive    PrincipalStatus = "ACTIVE"
	PrincipalStatusSuspended PrincipalStatus = "SUSPENDED"
)

// Principal is the authenticated identity resolved from the identity store.
// Immutable once resolved; the core never constructs one itself.
type Principal struct {
	ID           int64
	Username     string
	DisplayName  string
	PasswordHash string
	Status       PrincipalStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
