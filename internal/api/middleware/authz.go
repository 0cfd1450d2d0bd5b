package middleware

import (
	"net/http"

	"github.com/greengirl/dashboard/internal/api/response"
	"github.com/greengirl/dashboard/internal/session"
)

// RetryAfterSeconds is advertised while a session is still resolving.
const RetryAfterSeconds = "1"

type redirectDetails struct {
	Redirect string `json:"redirect"`
}

// RequireRoute returns middleware that only lets the request through when
// the route guard allows it for the current session.
func RequireRoute(route session.Route) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			d := session.Guard(GetSession(r.Context()), route)
			switch d.Kind {
			case session.Allow:
				next.ServeHTTP(w, r)
			case session.Pending:
				awaiting(w, requestID)
			default:
				if d.Target == session.LoginPath {
					response.ErrWithDetails(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Sign in required",
						redirectDetails{Redirect: d.Target}, requestID)
					return
				}
				response.ErrWithDetails(w, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions",
					redirectDetails{Redirect: d.Target}, requestID)
			}
		})
	}
}

// RequireAnonymous returns middleware that guards the login route: it
// rejects requests from a context that is already signed in.
func RequireAnonymous() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			d := session.LoginGuard(GetSession(r.Context()))
			switch d.Kind {
			case session.Allow:
				next.ServeHTTP(w, r)
			case session.Pending:
				awaiting(w, requestID)
			default:
				response.ErrWithDetails(w, http.StatusConflict, "ALREADY_AUTHENTICATED", "Already signed in",
					redirectDetails{Redirect: d.Target}, requestID)
			}
		})
	}
}

func awaiting(w http.ResponseWriter, requestID string) {
	w.Header().Set("Retry-After", RetryAfterSeconds)
	response.Err(w, http.StatusServiceUnavailable, "AWAITING_AUTHENTICATION", "Session is still being resolved", requestID)
}
