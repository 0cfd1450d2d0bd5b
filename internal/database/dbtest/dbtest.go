// Package dbtest opens a migrated, empty Postgres pool for repository tests.
package dbtest

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/greengirl/dashboard/internal/database"
)

// Pool connects to TEST_DATABASE_URL, applies migrations and truncates every
// table. The test is skipped when the variable is unset or the server is unreachable.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("skipping: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.New(ctx, dbURL)
	if err != nil {
		t.Skipf("skipping: cannot connect to test database: %v", err)
	}
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))

	_, err = db.Pool().Exec(ctx, `TRUNCATE TABLE activities, materials, storage_config,
		activity_types, projects, profiles, identities CASCADE`)
	require.NoError(t, err)

	return db.Pool()
}

// InsertIdentity creates a bare identity row and returns its ID.
func InsertIdentity(t *testing.T, pool *pgxpool.Pool, email string) string {
	t.Helper()

	var id string
	err := pool.QueryRow(context.Background(),
		`INSERT INTO identities (email, password_hash) VALUES ($1, 'x') RETURNING id::text`, email,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
