package lookup

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greengirl/dashboard/internal/material"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Projects returns project names in alphabetical order.
func (r *PostgresRepository) Projects(ctx context.Context) ([]string, error) {
	return r.names(ctx, `SELECT name FROM projects ORDER BY name`)
}

// ActivityTypes returns activity type names in alphabetical order.
func (r *PostgresRepository) ActivityTypes(ctx context.Context) ([]string, error) {
	return r.names(ctx, `SELECT name FROM activity_types ORDER BY name`)
}

func (r *PostgresRepository) names(ctx context.Context, query string) ([]string, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying lookup: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collecting lookup rows: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// AddProjects inserts project names, ignoring ones that already exist.
func (r *PostgresRepository) AddProjects(ctx context.Context, names []string) error {
	return r.insertNames(ctx, `INSERT INTO projects (name) VALUES ($1) ON CONFLICT DO NOTHING`, names)
}

// AddActivityTypes inserts activity type names, ignoring ones that already exist.
func (r *PostgresRepository) AddActivityTypes(ctx context.Context, names []string) error {
	return r.insertNames(ctx, `INSERT INTO activity_types (name) VALUES ($1) ON CONFLICT DO NOTHING`, names)
}

func (r *PostgresRepository) insertNames(ctx context.Context, query string, names []string) error {
	batch := &pgx.Batch{}
	for _, n := range names {
		batch.Queue(query, n)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting lookup names: %w", err)
	}
	return nil
}

// Capacities returns stored capacities keyed by material type.
func (r *PostgresRepository) Capacities(ctx context.Context) (map[material.Type]float64, error) {
	rows, err := r.pool.Query(ctx, `SELECT material_type, capacity FROM storage_config`)
	if err != nil {
		return nil, fmt.Errorf("querying storage config: %w", err)
	}
	defer rows.Close()

	out := map[material.Type]float64{}
	for rows.Next() {
		var typ material.Type
		var capacity float64
		if err := rows.Scan(&typ, &capacity); err != nil {
			return nil, fmt.Errorf("scanning storage config row: %w", err)
		}
		out[typ] = capacity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating storage config rows: %w", err)
	}
	return out, nil
}

// UpsertCapacity sets the capacity for one material type.
func (r *PostgresRepository) UpsertCapacity(ctx context.Context, typ material.Type, capacity float64) error {
	query := `
		INSERT INTO storage_config (material_type, capacity)
		VALUES ($1, $2)
		ON CONFLICT (material_type) DO UPDATE
		SET capacity = EXCLUDED.capacity, updated_at = now()`

	if _, err := r.pool.Exec(ctx, query, typ, capacity); err != nil {
		return fmt.Errorf("upserting storage capacity: %w", err)
	}
	return nil
}
