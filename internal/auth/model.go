package auth

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a row in the identities table.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Metadata is the free-form user data attached to an identity at sign-up.
// Empty fields mean "not provided".
type Metadata struct {
	Name string
	Role string
}

// Identity is the authenticated principal behind a session token.
type Identity struct {
	ID       uuid.UUID
	Email    string
	Metadata Metadata
}

func (a *Account) identity() *Identity {
	return &Identity{
		ID:       a.ID,
		Email:    a.Email,
		Metadata: Metadata{Name: a.Name, Role: a.Role},
	}
}
