package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greengirl/dashboard/internal/profile"
	"github.com/greengirl/dashboard/internal/session"
)

func authenticated(role profile.Role) session.Session {
	return session.Session{User: &profile.User{Name: "Ana", Role: role}, IsAuthenticated: true}
}

func TestGuard(t *testing.T) {
	tests := []struct {
		name    string
		session session.Session
		route   session.Route
		want    session.Decision
	}{
		{
			name:    "loading is pending",
			session: session.Session{Loading: true},
			route:   session.DashboardRoute,
			want:    session.Decision{Kind: session.Pending},
		},
		{
			name:    "anonymous redirects to login",
			session: session.Session{},
			route:   session.DashboardRoute,
			want:    session.Decision{Kind: session.Redirect, Target: "/login"},
		},
		{
			name:    "missing role redirects to dashboard",
			session: authenticated(profile.RoleUser),
			route:   session.UsersRoute,
			want:    session.Decision{Kind: session.Redirect, Target: "/dashboard"},
		},
		{
			name:    "super-user may open users",
			session: authenticated(profile.RoleSuperUser),
			route:   session.UsersRoute,
			want:    session.Decision{Kind: session.Allow},
		},
		{
			name:    "any role for unrestricted route",
			session: authenticated(profile.RoleUser),
			route:   session.MaterialsRoute,
			want:    session.Decision{Kind: session.Allow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, session.Guard(tt.session, tt.route))
		})
	}
}

func TestLoginGuard(t *testing.T) {
	assert.Equal(t, session.Decision{Kind: session.Pending}, session.LoginGuard(session.Session{Loading: true}))
	assert.Equal(t, session.Decision{Kind: session.Allow}, session.LoginGuard(session.Session{}))
	assert.Equal(t,
		session.Decision{Kind: session.Redirect, Target: "/dashboard"},
		session.LoginGuard(authenticated(profile.RoleUser)))
}

func TestNavigation(t *testing.T) {
	names := func(items []session.NavItem) []string {
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = it.Name
		}
		return out
	}

	assert.Equal(t,
		[]string{"Dashboard", "Atividades", "Materiais", "Relatórios"},
		names(session.Navigation(&profile.User{Role: profile.RoleUser})))
	assert.Equal(t,
		[]string{"Dashboard", "Atividades", "Materiais", "Relatórios", "Usuários"},
		names(session.Navigation(&profile.User{Role: profile.RoleSuperUser})))
	assert.Empty(t, session.Navigation(nil))
}

func TestDecisionKind_String(t *testing.T) {
	assert.Equal(t, "allow", session.Allow.String())
	assert.Equal(t, "redirect", session.Redirect.String())
	assert.Equal(t, "pending", session.Pending.String())
}
