package gateway

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/profile"
)

// NewUser holds the fields needed to register a user from the admin screen.
type NewUser struct {
	Name     string
	Email    string
	Password string
	Role     profile.Role
}

// ListUsers returns every profile, or an empty list if the backend fails.
func (g *Gateway) ListUsers(ctx context.Context) []profile.User {
	users, err := g.profiles.List(ctx)
	if err != nil {
		slog.Error("failed to list users", "error", err)
		return []profile.User{}
	}
	return users
}

// AddUser registers an identity and its profile.
func (g *Gateway) AddUser(ctx context.Context, nu NewUser) (*profile.User, error) {
	identity, err := g.auth.SignUp(ctx, nu.Email, nu.Password, auth.Metadata{Name: nu.Name, Role: string(nu.Role)})
	if err != nil {
		return nil, writeErr("sign up", err)
	}

	u, err := g.createIfAbsent(ctx, identity)
	if err != nil {
		return nil, writeErr("create profile", err)
	}
	return u, nil
}

// UpdateUserRole changes another user's role. Actors cannot change their own.
// The identity metadata follows the profile so a re-created profile keeps the
// new role, and live sessions of the target reload it.
func (g *Gateway) UpdateUserRole(ctx context.Context, actorID, targetID uuid.UUID, role profile.Role) (*profile.User, error) {
	if actorID == targetID {
		return nil, ErrSelfModification
	}
	u, err := g.profiles.UpdateRole(ctx, targetID, role)
	if err != nil {
		return nil, writeErr("update role", err)
	}
	g.sessions.RefreshIdentity(ctx, targetID)

	if err := g.syncIdentityRole(ctx, targetID, role); err != nil {
		return nil, writeErr("update role", err)
	}
	return u, nil
}

// DeleteUser removes another user's profile and signs out their sessions.
// The auth identity is kept but demoted, so a later sign-in re-creates the
// profile as a regular user.
func (g *Gateway) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrSelfModification
	}
	if err := g.profiles.Delete(ctx, targetID); err != nil {
		return writeErr("delete user", err)
	}
	g.sessions.RevokeIdentity(ctx, targetID)

	return writeErr("delete user", g.syncIdentityRole(ctx, targetID, profile.RoleUser))
}

func (g *Gateway) syncIdentityRole(ctx context.Context, id uuid.UUID, role profile.Role) error {
	err := g.auth.UpdateRole(ctx, id, string(role))
	if errors.Is(err, auth.ErrAccountNotFound) {
		slog.Warn("profile without identity", "userId", id)
		return nil
	}
	return err
}
