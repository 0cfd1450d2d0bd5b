// Package session tracks who is signed in to each browsing context and
// decides whether a route may be shown.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/greengirl/dashboard/internal/auth"
	"github.com/greengirl/dashboard/internal/gateway"
	"github.com/greengirl/dashboard/internal/profile"
)

// Session is the observable auth state of one browsing context.
// IsAuthenticated is true exactly when User is non-nil. Loading is true only
// until the first auth resolution completes.
type Session struct {
	User            *profile.User
	IsAuthenticated bool
	Loading         bool
}

// AuthSource delivers auth state changes for one browsing context.
type AuthSource interface {
	OnAuthStateChange(ctx context.Context, l gateway.Listener) (unsubscribe func())
	SignOut(ctx context.Context) error
}

// ProfileResolver turns an identity into a full user.
type ProfileResolver interface {
	ResolveProfile(ctx context.Context, identity *auth.Identity) (*profile.User, error)
}

// Provider is the session state machine of one browsing context.
type Provider struct {
	source   AuthSource
	resolver ProfileResolver

	mu          sync.Mutex
	state       Session
	// received numbers events on arrival; applied is the number of the last
	// event whose resolution reached state. Older resolutions are dropped.
	received    uint64
	applied     uint64
	subs        map[uint64]func(Session)
	nextSub     uint64
	unsubscribe func()
	started     bool
	closed      bool

	ready     chan struct{}
	readyOnce sync.Once
}

// NewProvider creates a Provider in the loading state.
func NewProvider(source AuthSource, resolver ProfileResolver) *Provider {
	return &Provider{
		source:   source,
		resolver: resolver,
		state:    Session{Loading: true},
		subs:     make(map[uint64]func(Session)),
		ready:    make(chan struct{}),
	}
}

// Start subscribes to the auth source. The source delivers the current state
// immediately, so Start returns after the first resolution. Calling Start
// more than once has no effect.
func (p *Provider) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started || p.closed {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	unsubscribe := p.source.OnAuthStateChange(ctx, p.handle)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		unsubscribe()
		return
	}
	p.unsubscribe = unsubscribe
	p.mu.Unlock()
}

func (p *Provider) handle(ctx context.Context, ev gateway.AuthEvent) {
	p.mu.Lock()
	p.received++
	seq := p.received
	p.mu.Unlock()

	var user *profile.User
	if ev.Identity != nil {
		u, err := p.resolver.ResolveProfile(ctx, ev.Identity)
		if err != nil {
			slog.Warn("session resolved without user", "event", ev.Kind, "error", err)
		} else {
			user = u
		}
	}

	p.mu.Lock()
	if p.closed || seq < p.applied {
		p.mu.Unlock()
		return
	}
	p.applied = seq
	p.state = Session{User: user, IsAuthenticated: user != nil, Loading: false}
	snapshot := p.snapshotLocked()
	subs := p.subscribersLocked()
	p.mu.Unlock()

	p.readyOnce.Do(func() { close(p.ready) })

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Current returns a copy of the current session.
func (p *Provider) Current() Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Provider) snapshotLocked() Session {
	s := p.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (p *Provider) subscribersLocked() []func(Session) {
	subs := make([]func(Session), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	return subs
}

// Subscribe registers fn to receive every session change. The returned
// function unsubscribes.
func (p *Provider) Subscribe(fn func(Session)) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// Wait blocks until the first resolution completes or ctx is done.
func (p *Provider) Wait(ctx context.Context) error {
	select {
	case <-p.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Logout signs the context out. The resulting auth event moves the
// session to anonymous.
func (p *Provider) Logout(ctx context.Context) error {
	return p.source.SignOut(ctx)
}

// UpdateUserContext merges patch into the current user without refetching.
// It is a no-op when nobody is signed in.
func (p *Provider) UpdateUserContext(patch profile.Patch) {
	p.mu.Lock()
	if p.state.User == nil || p.closed {
		p.mu.Unlock()
		return
	}
	updated := p.state.User.Apply(patch)
	p.state.User = &updated
	snapshot := p.snapshotLocked()
	subs := p.subscribersLocked()
	p.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Close tears down the auth subscription. Resolutions still in flight are
// discarded when they complete.
func (p *Provider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	unsubscribe := p.unsubscribe
	p.unsubscribe = nil
	p.subs = map[uint64]func(Session){}
	p.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
