package session

import (
	"context"
	"sync"
	"time"
)

// ProviderFactory builds the Provider for a browsing context.
type ProviderFactory func(contextID string) *Provider

// Registry owns one Provider per browsing context.
type Registry struct {
	newProvider ProviderFactory
	idleTTL     time.Duration
	onEvict     func(contextID string)
	now         func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	provider *Provider
	lastSeen time.Time
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithEvictHook runs fn after a context is evicted.
func WithEvictHook(fn func(contextID string)) RegistryOption {
	return func(r *Registry) { r.onEvict = fn }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

// NewRegistry creates a Registry that evicts contexts idle for longer than idleTTL.
func NewRegistry(factory ProviderFactory, idleTTL time.Duration, opts ...RegistryOption) *Registry {
	r := &Registry{
		newProvider: factory,
		idleTTL:     idleTTL,
		onEvict:     func(string) {},
		now:         time.Now,
		entries:     make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Acquire returns the Provider for contextID, creating and starting it on
// first use. Resolution runs detached from ctx's cancellation so an aborted
// request does not leave the context stuck in loading.
func (r *Registry) Acquire(ctx context.Context, contextID string) *Provider {
	r.mu.Lock()
	e, ok := r.entries[contextID]
	if ok {
		e.lastSeen = r.now()
		r.mu.Unlock()
		return e.provider
	}

	p := r.newProvider(contextID)
	r.entries[contextID] = &entry{provider: p, lastSeen: r.now()}
	r.mu.Unlock()

	go p.Start(context.WithoutCancel(ctx))
	return p
}

// Sweep closes and removes every context idle for longer than the TTL.
// It returns the number evicted.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	var evicted []string
	var providers []*Provider
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			evicted = append(evicted, id)
			providers = append(providers, e.provider)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	for i, p := range providers {
		p.Close()
		r.onEvict(evicted[i])
	}
	return len(evicted)
}

// Len returns the number of live contexts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close closes every provider.
func (r *Registry) Close() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range entries {
		e.provider.Close()
	}
}
