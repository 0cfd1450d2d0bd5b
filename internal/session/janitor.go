package session

import (
	"context"
	"log/slog"
	"time"
)

// Janitor periodically evicts idle browsing contexts from a Registry.
type Janitor struct {
	registry *Registry
	interval time.Duration
}

// NewJanitor creates a new Janitor.
func NewJanitor(registry *Registry, interval time.Duration) *Janitor {
	return &Janitor{
		registry: registry,
		interval: interval,
	}
}

// Start begins the eviction loop. It blocks until ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	slog.Info("session janitor started", "interval", j.interval.String())
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session janitor stopped")
			return
		case <-ticker.C:
			if n := j.registry.Sweep(); n > 0 {
				slog.Debug("evicted idle browsing contexts", "count", n, "remaining", j.registry.Len())
			}
		}
	}
}
