package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/profile"
	"github.com/greengirl/dashboard/internal/session"
)

// ContextCookie names the cookie identifying a browsing context.
const ContextCookie = "gg_ctx"

const (
	contextIDKey contextKey = "contextID"
	providerKey  contextKey = "provider"
)

// SessionRegistry hands out the session provider of a browsing context.
type SessionRegistry interface {
	Acquire(ctx context.Context, contextID string) *session.Provider
}

// SessionConfig configures the Session middleware.
type SessionConfig struct {
	Registry SessionRegistry
	// Revalidate re-checks the stored token of a context so expired sessions
	// are dropped before the request is guarded. Optional.
	Revalidate     func(ctx context.Context, contextID string)
	ResolveTimeout time.Duration
	SecureCookie   bool
}

// Session is middleware that attaches the browsing context's session
// provider to the request. A context cookie is issued when the request has
// none. The request waits up to ResolveTimeout for the first resolution;
// after that the session is reported as still loading.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contextID := contextIDFromCookie(r)
			if contextID == "" {
				contextID = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     ContextCookie,
					Value:    contextID,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.SecureCookie,
					SameSite: http.SameSiteLaxMode,
				})
			}

			provider := cfg.Registry.Acquire(r.Context(), contextID)
			if cfg.Revalidate != nil {
				cfg.Revalidate(r.Context(), contextID)
			}

			waitCtx, cancel := context.WithTimeout(r.Context(), cfg.ResolveTimeout)
			if err := provider.Wait(waitCtx); err != nil {
				slog.Warn("session still resolving", "context", contextID, "error", err)
			}
			cancel()

			next.ServeHTTP(w, r.WithContext(WithProvider(r.Context(), contextID, provider)))
		})
	}
}

func contextIDFromCookie(r *http.Request) string {
	c, err := r.Cookie(ContextCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

// WithProvider returns a copy of ctx carrying the browsing context and its provider.
func WithProvider(ctx context.Context, contextID string, p *session.Provider) context.Context {
	ctx = context.WithValue(ctx, contextIDKey, contextID)
	return context.WithValue(ctx, providerKey, p)
}

// GetContextID retrieves the browsing context ID from the request context.
func GetContextID(ctx context.Context) string {
	if id, ok := ctx.Value(contextIDKey).(string); ok {
		return id
	}
	return ""
}

// GetProvider retrieves the session provider from the request context.
func GetProvider(ctx context.Context) *session.Provider {
	if p, ok := ctx.Value(providerKey).(*session.Provider); ok {
		return p
	}
	return nil
}

// GetSession returns the current session. Without a provider the session is
// reported as loading.
func GetSession(ctx context.Context) session.Session {
	p := GetProvider(ctx)
	if p == nil {
		return session.Session{Loading: true}
	}
	return p.Current()
}

// GetUser returns the signed-in user, or nil.
func GetUser(ctx context.Context) *profile.User {
	return GetSession(ctx).User
}
