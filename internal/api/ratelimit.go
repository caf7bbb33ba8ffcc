// Rate limiter for endpoints that draw fair random numbers.
// In-memory, one refilling allowance per client IP.
package api

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter gives each client IP an allowance of maxRate rolls that
// refills continuously, one roll every window/maxRate.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*allowance
	burst    float64
	perToken time.Duration
	now      func() time.Time
}

type allowance struct {
	tokens float64
	seen   time.Time
}

// NewRateLimiter creates a rate limiter allowing maxRate requests per window.
func NewRateLimiter(maxRate int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	rl := &RateLimiter{
		clients: make(map[string]*allowance),
		burst:   float64(maxRate),
		now:     time.Now,
	}
	if maxRate > 0 {
		rl.perToken = window / time.Duration(maxRate)
	}
	return rl
}

// Allow spends one roll from ip's allowance.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	a := rl.refill(ip, rl.now())
	if a.tokens < 1 {
		return false
	}
	a.tokens--
	return true
}

// RetryAfter returns the whole seconds until ip can roll again.
func (rl *RateLimiter) RetryAfter(ip string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	a := rl.refill(ip, rl.now())
	if a.tokens >= 1 || rl.perToken <= 0 {
		return 0
	}
	wait := time.Duration((1 - a.tokens) * float64(rl.perToken))
	return int((wait + time.Second - 1) / time.Second)
}

// refill tops up ip's allowance to now. Called with mu held.
func (rl *RateLimiter) refill(ip string, now time.Time) *allowance {
	a, ok := rl.clients[ip]
	if !ok {
		rl.forget(now)
		a = &allowance{tokens: rl.burst, seen: now}
		rl.clients[ip] = a
		return a
	}
	a.tokens = rl.level(a, now)
	a.seen = now
	return a
}

func (rl *RateLimiter) level(a *allowance, now time.Time) float64 {
	if rl.perToken <= 0 {
		return a.tokens
	}
	return min(rl.burst, a.tokens+float64(now.Sub(a.seen))/float64(rl.perToken))
}

// forget drops clients whose allowance is full again, once the table is
// large. Called with mu held.
func (rl *RateLimiter) forget(now time.Time) {
	if len(rl.clients) < 1024 {
		return
	}
	for ip, a := range rl.clients {
		if rl.level(a, now) >= rl.burst {
			delete(rl.clients, ip)
		}
	}
}

// reject writes a 429 with Retry-After when ip is over its limit.
func (rl *RateLimiter) reject(w http.ResponseWriter, ip string) bool {
	if rl.Allow(ip) {
		return false
	}
	w.Header().Set("Retry-After", strconv.Itoa(rl.RetryAfter(ip)))
	writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
	return true
}

// clientIP takes the first X-Forwarded-For entry, else the remote host.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
