package session

import "github.com/greengirl/dashboard/internal/profile"

const (
	LoginPath   = "/login"
	DefaultPath = "/dashboard"
)

// DecisionKind tags the outcome of a route guard.
type DecisionKind int

const (
	Allow DecisionKind = iota
	Redirect
	Pending
)

func (k DecisionKind) String() string {
	switch k {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	case Pending:
		return "pending"
	default:
		return "unknown"
	}
}

// Decision is the result of guarding a route. Target is set only for Redirect.
type Decision struct {
	Kind   DecisionKind
	Target string
}

// Route is a protected view. An empty Roles list admits any signed-in user.
type Route struct {
	Path  string
	Roles []profile.Role
}

// Guard decides whether a protected route may render for the session.
func Guard(s Session, r Route) Decision {
	switch {
	case s.Loading:
		return Decision{Kind: Pending}
	case !s.IsAuthenticated:
		return Decision{Kind: Redirect, Target: LoginPath}
	case !s.User.HasRole(r.Roles...):
		return Decision{Kind: Redirect, Target: DefaultPath}
	default:
		return Decision{Kind: Allow}
	}
}

// LoginGuard decides whether the login view may render.
func LoginGuard(s Session) Decision {
	switch {
	case s.Loading:
		return Decision{Kind: Pending}
	case s.IsAuthenticated:
		return Decision{Kind: Redirect, Target: DefaultPath}
	default:
		return Decision{Kind: Allow}
	}
}
