package activity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an activity record is not found.
var ErrNotFound = errors.New("activity not found")

// Repository defines the data access interface for activity records.
type Repository interface {
	// List returns every activity, newest first, joined with its author.
	List(ctx context.Context) ([]WithAuthor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*WithAuthor, error)
	Create(ctx context.Context, a *Activity) (*WithAuthor, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*WithAuthor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
