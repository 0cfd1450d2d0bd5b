package gateway

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/profile"
)

// ResolveProfile returns the full user for an authenticated identity,
// creating the profile row when it does not exist yet. A nil identity
// resolves to no user.
func (g *Gateway) ResolveProfile(ctx context.Context, identity *auth.Identity) (*profile.User, error) {
	if identity == nil {
		return nil, nil
	}

	existing, err := g.tryFetch(ctx, identity.ID)
	if err != nil {
		slog.Error("profile fetch failed", "userId", identity.ID, "error", err)
		return nil, ErrProfileResolution
	}

	u := existing
	if u == nil {
		u, err = g.createIfAbsent(ctx, identity)
		if err != nil {
			slog.Error("profile creation failed", "userId", identity.ID, "error", err)
			return nil, ErrProfileResolution
		}
	}

	if u.Email == "" {
		u.Email = identity.Email
	}
	return u, nil
}

// tryFetch returns (nil, nil) when the profile is absent and an error for
// anything else, so transient failures are never mistaken for absence.
func (g *Gateway) tryFetch(ctx context.Context, id uuid.UUID) (*profile.User, error) {
	u, err := g.profiles.GetByID(ctx, id)
	if errors.Is(err, profile.ErrNotFound) {
		return nil, nil
	}
	return u, err
}

func (g *Gateway) createIfAbsent(ctx context.Context, identity *auth.Identity) (*profile.User, error) {
	u := synthesizeProfile(identity)
	err := g.profiles.Create(ctx, u)
	if errors.Is(err, profile.ErrDuplicate) {
		// Created concurrently by another resolution of the same identity.
		return g.profiles.GetByID(ctx, identity.ID)
	}
	if err != nil {
		return nil, err
	}
	slog.Info("profile created", "userId", u.ID, "role", u.Role)
	return u, nil
}

func synthesizeProfile(identity *auth.Identity) *profile.User {
	name := strings.TrimSpace(identity.Metadata.Name)
	if name == "" {
		name, _, _ = strings.Cut(identity.Email, "@")
	}

	role := profile.Role(identity.Metadata.Role)
	if !role.Valid() {
		role = profile.RoleUser
	}

	return &profile.User{
		ID:    identity.ID,
		Name:  name,
		Email: identity.Email,
		Role:  role,
	}
}

// UpdateProfileName changes the caller's display name.
func (g *Gateway) UpdateProfileName(ctx context.Context, id uuid.UUID, name string) (*profile.User, error) {
	u, err := g.profiles.UpdateName(ctx, id, name)
	if err != nil {
		return nil, writeErr("update profile", err)
	}
	return u, nil
}

// UpdateCredentials changes the caller's sign-in email and/or password.
// Empty values leave the field unchanged.
func (g *Gateway) UpdateCredentials(ctx context.Context, id uuid.UUID, email, password string) (*auth.Identity, error) {
	identity, err := g.auth.UpdateCredentials(ctx, id, email, password)
	if err != nil {
		return nil, writeErr("update credentials", err)
	}
	if email != "" {
		if err := g.profiles.UpdateEmail(ctx, id, identity.Email); err != nil && !errors.Is(err, profile.ErrNotFound) {
			return nil, writeErr("update profile email", err)
		}
	}
	return identity, nil
}
