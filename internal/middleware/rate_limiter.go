package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// visitor tracks the limiter for one client address.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client address.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	logger   zerolog.Logger
}

// NewRateLimiter creates a rate limiter allowing rps requests per second
// with the given burst per client, and starts its idle-visitor cleanup loop.
func NewRateLimiter(rps float64, burst int, logger zerolog.Logger) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		logger:   logger.With().Str("component", "rate-limiter").Logger(),
	}
	go rl.cleanupLoop()
	return rl
}

// Middleware rejects requests over the client's budget with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiterFor(clientAddr(r)).Allow() {
			rl.logger.Warn().Str("remote_addr", r.RemoteAddr).Str("path", r.URL.Path).Msg("rate limit exceeded")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": "too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// limiterFor returns the limiter for an address, creating it on first sight.
func (rl *RateLimiter) limiterFor(addr string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[addr]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[addr] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupLoop evicts visitors idle for more than five minutes.
func (rl *RateLimiter) cleanupLoop() {
	for {
		time.Sleep(time.Minute)
		rl.mu.Lock()
		for addr, v := range rl.visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(rl.visitors, addr)
			}
		}
		rl.mu.Unlock()
	}
}

// clientAddr strips the port from the remote address.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
