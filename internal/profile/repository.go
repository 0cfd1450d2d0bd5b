package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no profile row exists for the given identity.
var ErrNotFound = errors.New("profile not found")

// ErrDuplicate is returned when a profile already exists for the identity.
var ErrDuplicate = errors.New("profile already exists")

// Repository defines the data access interface for profiles.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, u *User) error
	List(ctx context.Context) ([]User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*User, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role Role) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
