package activity

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
	SELECT a.id, a.project, a.type, a.description, a.participants, a.date,
	       a.user_id, a.created_at, COALESCE(p.name, '')
	FROM activities a
	LEFT JOIN profiles p ON p.id = a.user_id`

func scanWithAuthor(row pgx.Row) (*WithAuthor, error) {
	var a WithAuthor
	err := row.Scan(
		&a.ID, &a.Project, &a.Type, &a.Description, &a.Participants, &a.Date,
		&a.UserID, &a.CreatedAt, &a.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns every activity ordered by date, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]WithAuthor, error) {
	rows, err := r.pool.Query(ctx, selectWithAuthor+` ORDER BY a.date DESC, a.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	items := []WithAuthor{}
	for rows.Next() {
		a, err := scanWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity rows: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single activity with its author.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*WithAuthor, error) {
	a, err := scanWithAuthor(r.pool.QueryRow(ctx, selectWithAuthor+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying activity: %w", err)
	}
	return a, nil
}

// Create inserts an activity. A zero date defaults to today.
func (r *PostgresRepository) Create(ctx context.Context, a *Activity) (*WithAuthor, error) {
	if a.Date.IsZero() {
		a.Date = time.Now()
	}

	query := `
		INSERT INTO activities (project, type, description, participants, date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		a.Project, a.Type, a.Description, a.Participants, a.Date, a.UserID,
	).Scan(&a.ID)
	if err != nil {
		return nil, fmt.Errorf("inserting activity: %w", err)
	}

	return r.GetByID(ctx, a.ID)
}

// Update applies non-nil fields.
func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*WithAuthor, error) {
	query := `
		UPDATE activities SET
			project      = COALESCE($2, project),
			type         = COALESCE($3, type),
			description  = COALESCE($4, description),
			participants = COALESCE($5, participants)
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, fields.Project, fields.Type, fields.Description, fields.Participants)
	if err != nil {
		return nil, fmt.Errorf("updating activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes an activity record.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
