package lookup

import (
	"context"

	"github.com/greengirl/dashboard/internal/material"
)

// Repository provides the reference tables shown in record forms and the
// per-type storage capacities.
type Repository interface {
	Projects(ctx context.Context) ([]string, error)
	ActivityTypes(ctx context.Context) ([]string, error)
	AddProjects(ctx context.Context, names []string) error
	AddActivityTypes(ctx context.Context, names []string) error

	// Capacities returns only the types that have a stored row.
	Capacities(ctx context.Context) (map[material.Type]float64, error)
	UpsertCapacity(ctx context.Context, typ material.Type, capacity float64) error
}
