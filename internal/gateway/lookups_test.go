package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greengirl/dashboard/internal/gateway"
	"github.com/greengirl/dashboard/internal/material"
)

func TestStorageConfig_Defaults(t *testing.T) {
	g := gateway.New(gateway.Deps{Lookups: &mockLookupRepo{
		capacitiesFn: func(context.Context) (map[material.Type]float64, error) {
			return nil, errors.New("unreachable")
		},
	}})

	cfg := g.StorageConfig(context.Background())

	assert.Equal(t, map[material.Type]float64{
		material.Oil:     1000,
		material.Dry:     500,
		material.Organic: 200,
	}, cfg)
}

func TestStorageConfig_MergesStoredRows(t *testing.T) {
	g := gateway.New(gateway.Deps{Lookups: &mockLookupRepo{
		capacitiesFn: func(context.Context) (map[material.Type]float64, error) {
			return map[material.Type]float64{material.Oil: 1500, "Vidro": 10}, nil
		},
	}})

	cfg := g.StorageConfig(context.Background())

	assert.Equal(t, 1500.0, cfg[material.Oil])
	assert.Equal(t, 500.0, cfg[material.Dry])
	assert.NotContains(t, cfg, material.Type("Vidro"))
	assert.Equal(t, 1000.0, gateway.DefaultCapacities[material.Oil], "defaults are not mutated")
}

func TestUpdateCapacity_WrapsWriteError(t *testing.T) {
	g := gateway.New(gateway.Deps{Lookups: &mockLookupRepo{
		upsertFn: func(context.Context, material.Type, float64) error {
			return errors.New("denied")
		},
	}})

	err := g.UpdateCapacity(context.Background(), material.Oil, 10)

	var writeErr *gateway.RemoteWriteError
	assert.ErrorAs(t, err, &writeErr)
}

func TestProjects_DegradesToEmpty(t *testing.T) {
	g := gateway.New(gateway.Deps{Lookups: &mockLookupRepo{
		projectsFn: func(context.Context) ([]string, error) { return nil, errors.New("down") },
	}})

	assert.Equal(t, []string{}, g.Projects(context.Background()))
}
