package gateway

import (
	"context"
	"log/slog"
	"maps"

	"github.com/greengirl/dashboard/internal/material"
)

// DefaultCapacities are used for any material type without a stored capacity.
var DefaultCapacities = map[material.Type]float64{
	material.Oil:     1000,
	material.Dry:     500,
	material.Organic: 200,
}

// Projects returns the project names for record forms.
func (g *Gateway) Projects(ctx context.Context) []string {
	names, err := g.lookups.Projects(ctx)
	if err != nil {
		slog.Error("failed to list projects", "error", err)
		return []string{}
	}
	return names
}

// ActivityTypes returns the activity type names for record forms.
func (g *Gateway) ActivityTypes(ctx context.Context) []string {
	names, err := g.lookups.ActivityTypes(ctx)
	if err != nil {
		slog.Error("failed to list activity types", "error", err)
		return []string{}
	}
	return names
}

// StorageConfig returns the capacity of every material type, falling back to
// DefaultCapacities for missing rows or when the backend fails.
func (g *Gateway) StorageConfig(ctx context.Context) map[material.Type]float64 {
	out := maps.Clone(DefaultCapacities)

	stored, err := g.lookups.Capacities(ctx)
	if err != nil {
		slog.Error("failed to load storage config", "error", err)
		return out
	}

	for typ, capacity := range stored {
		if typ.Valid() {
			out[typ] = capacity
		}
	}
	return out
}

// UpdateCapacity upserts the capacity for one material type.
func (g *Gateway) UpdateCapacity(ctx context.Context, typ material.Type, capacity float64) error {
	return writeErr("update storage capacity", g.lookups.UpsertCapacity(ctx, typ, capacity))
}
