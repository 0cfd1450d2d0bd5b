package gateway

import (
	"context"
	"log/slog"

	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/profile"
)

// SessionClient is the per-context auth handle used by Login.
type SessionClient interface {
	SignIn(ctx context.Context, email, password string) (*auth.Identity, error)
	SignOut(ctx context.Context) error
}

// Login signs the context in and resolves the full user. If the profile
// cannot be resolved the fresh session is signed out again and
// ErrProfileResolution is returned.
func (g *Gateway) Login(ctx context.Context, client SessionClient, email, password string) (*profile.User, error) {
	identity, err := client.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	u, err := g.ResolveProfile(ctx, identity)
	if err != nil {
		if signOutErr := client.SignOut(ctx); signOutErr != nil {
			slog.Warn("sign out after failed profile resolution", "error", signOutErr)
		}
		return nil, ErrProfileResolution
	}

	return u, nil
}
