package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when an identity record is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateEmail is returned when an identity with the same email exists.
var ErrDuplicateEmail = errors.New("email already registered")

// AccountRepository provides operations on the identities table.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
	CountAll(ctx context.Context) (int, error)
}
