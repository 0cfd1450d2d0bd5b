package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/gateway"
	"github.com/greengirl/dashboard/internal/material"
)

func TestListMaterials_DegradesToEmpty(t *testing.T) {
	g := gateway.New(gateway.Deps{Materials: &mockMaterialRepo{
		listFn: func(context.Context) ([]material.WithAuthor, error) {
			return nil, errors.New("timeout")
		},
	}})

	items := g.ListMaterials(context.Background())

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListMaterials_PassesThrough(t *testing.T) {
	want := []material.WithAuthor{{Material: material.Material{Project: "A"}, CreatedBy: "Ana"}}
	g := gateway.New(gateway.Deps{Materials: &mockMaterialRepo{
		listFn: func(context.Context) ([]material.WithAuthor, error) { return want, nil },
	}})

	assert.Equal(t, want, g.ListMaterials(context.Background()))
}

func TestCreateMaterial_WrapsWriteError(t *testing.T) {
	cause := errors.New("insert failed")
	g := gateway.New(gateway.Deps{Materials: &mockMaterialRepo{
		createFn: func(context.Context, *material.Material) (*material.WithAuthor, error) {
			return nil, cause
		},
	}})

	_, err := g.CreateMaterial(context.Background(), &material.Material{})

	var writeErr *gateway.RemoteWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "create material", writeErr.Op)
	assert.ErrorIs(t, err, cause)
}

func TestDeleteMaterial(t *testing.T) {
	id := uuid.New()
	g := gateway.New(gateway.Deps{Materials: &mockMaterialRepo{
		deleteFn: func(_ context.Context, got uuid.UUID) error {
			assert.Equal(t, id, got)
			return nil
		},
	}})

	assert.NoError(t, g.DeleteMaterial(context.Background(), id))
}

func TestDeleteMaterial_NotFoundIsWrapped(t *testing.T) {
	g := gateway.New(gateway.Deps{Materials: &mockMaterialRepo{
		deleteFn: func(context.Context, uuid.UUID) error { return material.ErrNotFound },
	}})

	err := g.DeleteMaterial(context.Background(), uuid.New())

	assert.ErrorIs(t, err, material.ErrNotFound)
}

func TestListActivities_DegradesToEmpty(t *testing.T) {
	g := gateway.New(gateway.Deps{Activities: &mockActivityRepo{
		listFn: func(context.Context) ([]activity.WithAuthor, error) {
			return nil, errors.New("timeout")
		},
	}})

	assert.Empty(t, g.ListActivities(context.Background()))
}

func TestCreateActivity(t *testing.T) {
	g := gateway.New(gateway.Deps{Activities: &mockActivityRepo{
		createFn: func(_ context.Context, a *activity.Activity) (*activity.WithAuthor, error) {
			return &activity.WithAuthor{Activity: *a, CreatedBy: "Ana"}, nil
		},
	}})

	created, err := g.CreateActivity(context.Background(), &activity.Activity{Project: "Horta"})

	require.NoError(t, err)
	assert.Equal(t, "Horta", created.Project)
	assert.Equal(t, "Ana", created.CreatedBy)
}
