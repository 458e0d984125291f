package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const rateLimiterIdleTTL = 5 * time.Minute

// RateLimiter applies a token bucket per client IP
type RateLimiter struct {
	perSecond rate.Limit
	burst     int
	now       func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows perSecond requests per client IP with the given burst.
// A perSecond of 0 or less disables limiting.
func NewRateLimiter(perSecond, burst int) *RateLimiter {
	return &RateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		now:       time.Now,
		buckets:   make(map[string]*bucket),
	}
}

// SetLimits changes the rate and burst. When either changes, existing buckets
// are dropped so every client starts over with the new burst.
func (rl *RateLimiter) SetLimits(perSecond, burst int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.perSecond == rate.Limit(perSecond) && rl.burst == burst {
		return
	}
	rl.perSecond = rate.Limit(perSecond)
	rl.burst = burst
	rl.buckets = make(map[string]*bucket)
}

// Allow reports whether a request from ip may proceed
func (rl *RateLimiter) Allow(ip string) bool {
	if ip == "" {
		ip = "unknown"
	}

	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.perSecond <= 0 {
		return true
	}
	b, ok := rl.buckets[ip]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rl.perSecond, rl.burst)}
		rl.buckets[ip] = b
	}
	b.lastSeen = now
	return b.lim.AllowN(now, 1)
}

// Prune drops buckets idle for longer than the TTL
func (rl *RateLimiter) Prune() {
	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rateLimiterIdleTTL {
			delete(rl.buckets, ip)
		}
	}
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ""
		if remote := RemoteIP(r); remote != nil {
			ip = remote.String()
		}
		if !rl.Allow(ip) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
