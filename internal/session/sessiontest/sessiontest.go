// Package sessiontest builds session providers with a fixed state for tests.
package sessiontest

import (
	"context"

	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/gateway"
	"github.com/greengirl/dashboard/internal/profile"
	"github.com/greengirl/dashboard/internal/session"
)

type staticSource struct {
	identity  *auth.Identity
	listeners []gateway.Listener
	signOuts  int
}

func (s *staticSource) OnAuthStateChange(ctx context.Context, l gateway.Listener) func() {
	s.listeners = append(s.listeners, l)
	l(ctx, gateway.AuthEvent{Kind: gateway.EventInitial, Identity: s.identity})
	return func() {}
}

func (s *staticSource) SignOut(ctx context.Context) error {
	s.signOuts++
	s.identity = nil
	for _, l := range s.listeners {
		l(ctx, gateway.AuthEvent{Kind: gateway.EventSignedOut})
	}
	return nil
}

type staticResolver struct {
	user *profile.User
}

func (r staticResolver) ResolveProfile(_ context.Context, identity *auth.Identity) (*profile.User, error) {
	if identity == nil || r.user == nil {
		return nil, nil
	}
	u := *r.user
	return &u, nil
}

// Static returns a started provider signed in as user, or anonymous when
// user is nil. Logout on it moves the session to anonymous.
func Static(user *profile.User) *session.Provider {
	var identity *auth.Identity
	if user != nil {
		identity = &auth.Identity{ID: user.ID, Email: user.Email}
	}
	p := session.NewProvider(&staticSource{identity: identity}, staticResolver{user: user})
	p.Start(context.Background())
	return p
}

// Loading returns a provider that never leaves the loading state.
func Loading() *session.Provider {
	return session.NewProvider(&staticSource{}, staticResolver{})
}
