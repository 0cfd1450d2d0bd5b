package material

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

const selectWithAuthor = `
	SELECT m.id, m.project, m.type, m.quantity, m.unit, m.usage, m.date,
	       m.user_id, m.created_at, COALESCE(p.name, '')
	FROM materials m
	LEFT JOIN profiles p ON p.id = m.user_id`

func scanWithAuthor(row pgx.Row) (*WithAuthor, error) {
	var m WithAuthor
	err := row.Scan(
		&m.ID, &m.Project, &m.Type, &m.Quantity, &m.Unit, &m.Usage, &m.Date,
		&m.UserID, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns every material ordered by date, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]WithAuthor, error) {
	rows, err := r.pool.Query(ctx, selectWithAuthor+` ORDER BY m.date DESC, m.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	defer rows.Close()

	items := []WithAuthor{}
	for rows.Next() {
		m, err := scanWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning material row: %w", err)
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating material rows: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single material with its author.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*WithAuthor, error) {
	m, err := scanWithAuthor(r.pool.QueryRow(ctx, selectWithAuthor+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying material: %w", err)
	}
	return m, nil
}

// Create inserts a material. The unit is derived from the type and a zero
// date defaults to today.
func (r *PostgresRepository) Create(ctx context.Context, m *Material) (*WithAuthor, error) {
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	m.Unit = m.Type.Unit()

	query := `
		INSERT INTO materials (project, type, quantity, unit, usage, date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		m.Project, m.Type, m.Quantity, m.Unit, m.Usage, m.Date, m.UserID,
	).Scan(&m.ID)
	if err != nil {
		return nil, fmt.Errorf("inserting material: %w", err)
	}

	return r.GetByID(ctx, m.ID)
}

// Update applies non-nil fields. Changing the type re-derives the unit.
func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*WithAuthor, error) {
	var unit *string
	if fields.Type != nil {
		u := fields.Type.Unit()
		unit = &u
	}

	query := `
		UPDATE materials SET
			project  = COALESCE($2, project),
			type     = COALESCE($3, type),
			unit     = COALESCE($4, unit),
			quantity = COALESCE($5, quantity),
			usage    = COALESCE($6, usage)
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, fields.Project, fields.Type, unit, fields.Quantity, fields.Usage)
	if err != nil {
		return nil, fmt.Errorf("updating material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a material record.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
