// Package gateway is the single point through which the dashboard reaches
// its backend: auth, profiles, records and lookups.
//
// Read paths never fail: on error they log and return an empty or default
// value. Write paths return a *RemoteWriteError.
package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/lookup"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/profile"
)

// AuthBackend is the subset of auth.Service the gateway relies on.
type AuthBackend interface {
	SignIn(ctx context.Context, email, password string) (*auth.Identity, string, error)
	SignOut(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (*auth.Identity, error)
	SignUp(ctx context.Context, email, password string, meta auth.Metadata) (*auth.Identity, error)
	UpdateCredentials(ctx context.Context, id uuid.UUID, email, password string) (*auth.Identity, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
}

// SessionNotifier pushes authorization changes to live sessions. *Hub
// implements it.
type SessionNotifier interface {
	RefreshIdentity(ctx context.Context, id uuid.UUID)
	RevokeIdentity(ctx context.Context, id uuid.UUID)
}

type nopNotifier struct{}

func (nopNotifier) RefreshIdentity(context.Context, uuid.UUID) {}
func (nopNotifier) RevokeIdentity(context.Context, uuid.UUID)  {}

// Deps holds the backend components wrapped by the Gateway.
type Deps struct {
	Auth       AuthBackend
	Profiles   profile.Repository
	Materials  material.Repository
	Activities activity.Repository
	Lookups    lookup.Repository
	// Sessions is told about role changes and deletions. Optional.
	Sessions   SessionNotifier
}

// Gateway wraps every remote call made by the dashboard.
type Gateway struct {
	auth       AuthBackend
	profiles   profile.Repository
	materials  material.Repository
	activities activity.Repository
	lookups    lookup.Repository
	sessions   SessionNotifier
}

// New creates a Gateway.
func New(deps Deps) *Gateway {
	g := &Gateway{
		auth:       deps.Auth,
		profiles:   deps.Profiles,
		materials:  deps.Materials,
		activities: deps.Activities,
		lookups:    deps.Lookups,
		sessions:   deps.Sessions,
	}
	if g.sessions == nil {
		g.sessions = nopNotifier{}
	}
	return g
}
