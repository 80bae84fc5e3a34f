package middleware

import (
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a fixed-window in-memory rate limiter keyed by client IP.
// Good enough for a single instance; a multi-instance deployment would need
// a shared store behind it.
type RateLimiter struct {
	windows  map[string]*window
	requests int
	period   time.Duration
	mu       sync.Mutex
}

type window struct {
	resetAt time.Time
	count   int
}

// NewRateLimiter creates a limiter allowing `requests` per `period` per IP.
func NewRateLimiter(requests int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows:  make(map[string]*window),
		requests: requests,
		period:   period,
	}
	go rl.sweep()
	return rl
}

// Middleware returns the chi-compatible rate limiting middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()
	win, ok := rl.windows[client]
	if !ok || now.After(win.resetAt) {
		rl.windows[client] = &window{count: 1, resetAt: now.Add(rl.period)}
		return true
	}
	if win.count < rl.requests {
		win.count++
		return true
	}
	return false
}

// sweep drops expired windows so the map doesn't grow without bound.
func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.period)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now().UTC()
		for client, win := range rl.windows {
			if now.After(win.resetAt) {
				delete(rl.windows, client)
			}
		}
		rl.mu.Unlock()
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
