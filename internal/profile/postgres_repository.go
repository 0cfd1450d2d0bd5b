package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const selectColumns = `
	SELECT p.id, p.name, COALESCE(NULLIF(p.email, ''), i.email, ''), p.role, p.created_at
	FROM profiles p
	LEFT JOIN identities i ON i.id = p.id`

// GetByID retrieves a profile joined with its identity email.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := selectColumns + ` WHERE p.id = $1`

	var u User
	err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	return &u, nil
}

// Create inserts a new profile row. The ID must be the identity ID.
func (r *PostgresRepository) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO profiles (id, name, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, u.ID, u.Name, u.Email, u.Role).Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return fmt.Errorf("inserting profile: %w", err)
	}

	return nil
}

// List retrieves all profiles ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	query := selectColumns + ` ORDER BY p.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profile rows: %w", err)
	}

	return users, nil
}

// UpdateName sets the display name and returns the updated profile.
func (r *PostgresRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*User, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE profiles SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return nil, fmt.Errorf("updating profile name: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// UpdateEmail keeps the profile copy of the email in step with the identity.
func (r *PostgresRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE profiles SET email = $2 WHERE id = $1`, id, email)
	if err != nil {
		return fmt.Errorf("updating profile email: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateRole sets the role and returns the updated profile.
func (r *PostgresRepository) UpdateRole(ctx context.Context, id uuid.UUID, role Role) (*User, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE profiles SET role = $2 WHERE id = $1`, id, role)
	if err != nil {
		return nil, fmt.Errorf("updating profile role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the profile row. The auth identity is left in place.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
