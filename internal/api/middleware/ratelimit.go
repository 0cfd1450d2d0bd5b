package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/time/rate"

	"github.com/greengirl/dashboard/internal/api/response"
)

// LoginLimiter rate-limits sign-in attempts per browsing context.
type LoginLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewLoginLimiter allows perSecond attempts per context with the given burst.
func NewLoginLimiter(perSecond float64, burst int) *LoginLimiter {
	return &LoginLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *LoginLimiter) limiter(contextID string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[contextID]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[contextID] = lim
	}
	return lim
}

// Forget drops the limiter of an evicted context.
func (l *LoginLimiter) Forget(contextID string) {
	l.mu.Lock()
	delete(l.limiters, contextID)
	l.mu.Unlock()
}

// Middleware rejects the request with 429 once the context's budget is spent.
func (l *LoginLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := l.limiter(GetContextID(r.Context())).Reserve()
		if !res.OK() {
			response.Err(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many sign-in attempts", GetRequestID(r.Context()))
			return
		}
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			response.Err(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many sign-in attempts", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
