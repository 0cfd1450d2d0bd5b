package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/database/dbtest"
)

func TestPostgresRepository_Lifecycle(t *testing.T) {
	pool := dbtest.Pool(t)
	repo := activity.NewRepository(pool)
	ctx := context.Background()

	owner := uuid.MustParse(dbtest.InsertIdentity(t, pool, "bia@example.com"))

	created, err := repo.Create(ctx, &activity.Activity{
		Project: "Horta Comunitária", Type: "Oficina", Description: "Compostagem",
		Participants: 14, Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), UserID: owner,
	})
	require.NoError(t, err)
	assert.Equal(t, 14, created.Participants)
	assert.Empty(t, created.CreatedBy, "no profile yet")

	participants := 20
	updated, err := repo.Update(ctx, created.ID, activity.UpdateFields{Participants: &participants})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.Participants)
	assert.Equal(t, "Compostagem", updated.Description)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = repo.Update(ctx, uuid.New(), activity.UpdateFields{Participants: &participants})
	assert.ErrorIs(t, err, activity.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, activity.ErrNotFound)
}
