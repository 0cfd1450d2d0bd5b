package material

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a material record is not found.
var ErrNotFound = errors.New("material not found")

// Repository defines the data access interface for material records.
type Repository interface {
	// List returns every material, newest first, joined with its author.
	List(ctx context.Context) ([]WithAuthor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*WithAuthor, error)
	Create(ctx context.Context, m *Material) (*WithAuthor, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*WithAuthor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
