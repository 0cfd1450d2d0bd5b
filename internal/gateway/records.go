package gateway

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/material"
)

// ListMaterials returns every material newest first, or an empty list if the
// backend fails.
func (g *Gateway) ListMaterials(ctx context.Context) []material.WithAuthor {
	items, err := g.materials.List(ctx)
	if err != nil {
		slog.Error("failed to list materials", "error", err)
		return []material.WithAuthor{}
	}
	return items
}

// GetMaterial fetches one material. Unlike the list read it reports errors,
// since callers use it to authorize a mutation.
func (g *Gateway) GetMaterial(ctx context.Context, id uuid.UUID) (*material.WithAuthor, error) {
	return g.materials.GetByID(ctx, id)
}

// CreateMaterial inserts a material owned by userID.
func (g *Gateway) CreateMaterial(ctx context.Context, m *material.Material) (*material.WithAuthor, error) {
	created, err := g.materials.Create(ctx, m)
	if err != nil {
		return nil, writeErr("create material", err)
	}
	return created, nil
}

// UpdateMaterial applies the given field changes.
func (g *Gateway) UpdateMaterial(ctx context.Context, id uuid.UUID, fields material.UpdateFields) (*material.WithAuthor, error) {
	updated, err := g.materials.Update(ctx, id, fields)
	if err != nil {
		return nil, writeErr("update material", err)
	}
	return updated, nil
}

// DeleteMaterial removes a material.
func (g *Gateway) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	return writeErr("delete material", g.materials.Delete(ctx, id))
}

// ListActivities returns every activity newest first, or an empty list if the
// backend fails.
func (g *Gateway) ListActivities(ctx context.Context) []activity.WithAuthor {
	items, err := g.activities.List(ctx)
	if err != nil {
		slog.Error("failed to list activities", "error", err)
		return []activity.WithAuthor{}
	}
	return items
}

// GetActivity fetches one activity.
func (g *Gateway) GetActivity(ctx context.Context, id uuid.UUID) (*activity.WithAuthor, error) {
	return g.activities.GetByID(ctx, id)
}

// CreateActivity inserts an activity.
func (g *Gateway) CreateActivity(ctx context.Context, a *activity.Activity) (*activity.WithAuthor, error) {
	created, err := g.activities.Create(ctx, a)
	if err != nil {
		return nil, writeErr("create activity", err)
	}
	return created, nil
}

// UpdateActivity applies the given field changes.
func (g *Gateway) UpdateActivity(ctx context.Context, id uuid.UUID, fields activity.UpdateFields) (*activity.WithAuthor, error) {
	updated, err := g.activities.Update(ctx, id, fields)
	if err != nil {
		return nil, writeErr("update activity", err)
	}
	return updated, nil
}

// DeleteActivity removes an activity.
func (g *Gateway) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	return writeErr("delete activity", g.activities.Delete(ctx, id))
}
