package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengirl/dashboard/internal/auth"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	return client, mr
}

func TestRedisSessionStore_SaveLookupDelete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := auth.NewRedisSessionStore(client)
	ctx := context.Background()
	owner := uuid.New()

	require.NoError(t, store.Save(ctx, "abc", owner, time.Minute))
	assert.True(t, mr.Exists("gg:session:abc"))
	assert.Equal(t, time.Minute, mr.TTL("gg:session:abc"))

	got, err := store.Lookup(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Lookup(ctx, "abc")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)

	assert.NoError(t, store.Delete(ctx, "abc"), "deleting twice is fine")
}

func TestRedisSessionStore_Expiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := auth.NewRedisSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", uuid.New(), time.Second))
	mr.FastForward(2 * time.Second)

	_, err := store.Lookup(ctx, "abc")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestRedisSessionStore_Unreachable(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer client.Close()
	mr.Close()

	_, err := auth.NewRedisSessionStore(client).Lookup(context.Background(), "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrSessionNotFound)
}
