package gateway

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/auth"
)

// EventKind names an auth state transition.
type EventKind string

const (
	EventInitial     EventKind = "INITIAL_SESSION"
	EventSignedIn    EventKind = "SIGNED_IN"
	EventSignedOut   EventKind = "SIGNED_OUT"
	EventExpired     EventKind = "TOKEN_EXPIRED"
	// EventUserUpdated re-delivers a live identity after its profile changed.
	EventUserUpdated EventKind = "USER_UPDATED"
)

// AuthEvent is delivered to listeners on every auth state change. Identity
// is nil when there is no session.
type AuthEvent struct {
	Kind     EventKind
	Identity *auth.Identity
}

// Listener receives auth events for one browsing context.
type Listener func(ctx context.Context, ev AuthEvent)

// Hub keeps the session token of every browsing context and fans auth
// events out to that context's listeners.
type Hub struct {
	backend AuthBackend

	mu       sync.Mutex
	contexts map[string]*authContext
}

type authContext struct {
	token     string
	owner     uuid.UUID
	listeners map[uint64]Listener
	nextID    uint64
}

// NewHub creates a Hub backed by the given auth backend.
func NewHub(backend AuthBackend) *Hub {
	return &Hub{
		backend:  backend,
		contexts: make(map[string]*authContext),
	}
}

// For returns the auth handle of one browsing context.
func (h *Hub) For(contextID string) *ContextAuth {
	return &ContextAuth{hub: h, id: contextID}
}

// Forget drops a browsing context and its listeners without revoking the session.
func (h *Hub) Forget(contextID string) {
	h.mu.Lock()
	delete(h.contexts, contextID)
	h.mu.Unlock()
}

// must be called with h.mu held.
func (h *Hub) state(contextID string) *authContext {
	st, ok := h.contexts[contextID]
	if !ok {
		st = &authContext{listeners: make(map[uint64]Listener)}
		h.contexts[contextID] = st
	}
	return st
}

// holding returns the contexts currently signed in as id.
func (h *Hub) holding(id uuid.UUID) []*ContextAuth {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []*ContextAuth
	for cid, st := range h.contexts {
		if st.token != "" && st.owner == id {
			out = append(out, &ContextAuth{hub: h, id: cid})
		}
	}
	return out
}

// RefreshIdentity makes every context signed in as id reload its profile.
func (h *Hub) RefreshIdentity(ctx context.Context, id uuid.UUID) {
	for _, c := range h.holding(id) {
		c.refresh(ctx, id)
	}
}

// RevokeIdentity signs out every context signed in as id.
func (h *Hub) RevokeIdentity(ctx context.Context, id uuid.UUID) {
	for _, c := range h.holding(id) {
		if err := c.signOutIf(ctx, id); err != nil {
			slog.Warn("failed to revoke session", "context", c.id, "userId", id, "error", err)
		}
	}
}

func (h *Hub) snapshot(st *authContext) []Listener {
	ls := make([]Listener, 0, len(st.listeners))
	for _, l := range st.listeners {
		ls = append(ls, l)
	}
	return ls
}

func emit(ctx context.Context, ls []Listener, ev AuthEvent) {
	for _, l := range ls {
		l(ctx, ev)
	}
}

// ContextAuth is the auth client of one browsing context.
type ContextAuth struct {
	hub *Hub
	id  string
}

// ID returns the browsing context identifier.
func (c *ContextAuth) ID() string {
	return c.id
}

// OnAuthStateChange registers l and immediately delivers the current state
// to it as an EventInitial. The returned function unsubscribes.
func (c *ContextAuth) OnAuthStateChange(ctx context.Context, l Listener) func() {
	h := c.hub

	h.mu.Lock()
	st := h.state(c.id)
	lid := st.nextID
	st.nextID++
	st.listeners[lid] = l
	token := st.token
	h.mu.Unlock()

	l(ctx, AuthEvent{Kind: EventInitial, Identity: c.verify(ctx, token)})

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if st, ok := h.contexts[c.id]; ok {
			delete(st.listeners, lid)
		}
	}
}

func (c *ContextAuth) verify(ctx context.Context, token string) *auth.Identity {
	if token == "" {
		return nil
	}

	identity, err := c.hub.backend.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrSessionExpired) {
			c.clearToken(token)
		} else {
			slog.Error("session verification failed", "context", c.id, "error", err)
		}
		return nil
	}
	return identity
}

// clearToken forgets token if it is still the current one and reports
// whether it did, along with the listeners to notify.
func (c *ContextAuth) clearToken(token string) ([]Listener, bool) {
	h := c.hub
	h.mu.Lock()
	defer h.mu.Unlock()

	st := h.state(c.id)
	if st.token != token {
		return nil, false
	}
	st.token = ""
	st.owner = uuid.Nil
	return h.snapshot(st), true
}

// SignIn opens a session for this browsing context and notifies listeners.
// A session already held by the context is revoked.
func (c *ContextAuth) SignIn(ctx context.Context, email, password string) (*auth.Identity, error) {
	h := c.hub

	identity, token, err := h.backend.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	st := h.state(c.id)
	previous := st.token
	st.token = token
	st.owner = identity.ID
	ls := h.snapshot(st)
	h.mu.Unlock()

	if previous != "" {
		if err := h.backend.SignOut(ctx, previous); err != nil {
			slog.Warn("failed to revoke replaced session", "context", c.id, "error", err)
		}
	}

	emit(ctx, ls, AuthEvent{Kind: EventSignedIn, Identity: identity})
	return identity, nil
}

// SignOut revokes the context's session and notifies listeners. The local
// session is dropped even when revocation fails.
func (c *ContextAuth) SignOut(ctx context.Context) error {
	return c.signOut(ctx, func(*authContext) bool { return true })
}

// signOutIf signs out only while the context is still held by owner.
func (c *ContextAuth) signOutIf(ctx context.Context, owner uuid.UUID) error {
	return c.signOut(ctx, func(st *authContext) bool { return st.owner == owner })
}

func (c *ContextAuth) signOut(ctx context.Context, match func(*authContext) bool) error {
	h := c.hub

	h.mu.Lock()
	st := h.state(c.id)
	if !match(st) {
		h.mu.Unlock()
		return nil
	}
	token := st.token
	st.token = ""
	st.owner = uuid.Nil
	ls := h.snapshot(st)
	h.mu.Unlock()

	if token == "" {
		return nil
	}

	err := h.backend.SignOut(ctx, token)
	emit(ctx, ls, AuthEvent{Kind: EventSignedOut})
	return err
}

// refresh re-verifies the token held for owner and re-delivers the identity.
func (c *ContextAuth) refresh(ctx context.Context, owner uuid.UUID) {
	h := c.hub

	h.mu.Lock()
	st := h.state(c.id)
	token := st.token
	held := st.owner == owner
	h.mu.Unlock()

	if token == "" || !held {
		return
	}

	identity, err := h.backend.Verify(ctx, token)
	switch {
	case errors.Is(err, auth.ErrSessionExpired):
		if ls, cleared := c.clearToken(token); cleared {
			emit(ctx, ls, AuthEvent{Kind: EventExpired})
		}
		return
	case err != nil:
		slog.Error("session refresh failed", "context", c.id, "error", err)
		return
	}

	h.mu.Lock()
	ls := h.snapshot(h.state(c.id))
	h.mu.Unlock()

	emit(ctx, ls, AuthEvent{Kind: EventUserUpdated, Identity: identity})
}

// Revalidate checks the context's token and emits EventExpired when the
// session has expired or been revoked elsewhere.
func (c *ContextAuth) Revalidate(ctx context.Context) {
	h := c.hub

	h.mu.Lock()
	token := h.state(c.id).token
	h.mu.Unlock()

	if token == "" {
		return
	}

	if _, err := h.backend.Verify(ctx, token); !errors.Is(err, auth.ErrSessionExpired) {
		return
	}

	if ls, cleared := c.clearToken(token); cleared {
		emit(ctx, ls, AuthEvent{Kind: EventExpired})
	}
}
