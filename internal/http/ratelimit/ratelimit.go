// Package ratelimit is a per-client token bucket for the public API surface.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	staleBucketAge  = 1 * time.Hour
	cleanupInterval = 30 * time.Minute
)

type bucket struct {
	tokens     int
	lastRefill time.Time
}

type Limiter struct {
	mu        sync.Mutex
	capacity  int
	refillDur time.Duration
	clients   map[string]*bucket
	stop      chan struct{}
}

// New builds a limiter that grants capacity requests per refill window per
// client IP. Stale buckets are swept in the background until Stop is called.
func New(capacity int, refillDur time.Duration) *Limiter {
	l := &Limiter{
		capacity:  capacity,
		refillDur: refillDur,
		clients:   make(map[string]*bucket),
		stop:      make(chan struct{}),
	}
	go l.cleanupLoop()

	return l
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for ip, b := range l.clients {
		if now.Sub(b.lastRefill) > staleBucketAge {
			delete(l.clients, ip)
		}
	}
}

func (l *Limiter) Stop() {
	close(l.stop)
}

func (l *Limiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	b, exists := l.clients[ip]
	if !exists {
		l.clients[ip] = &bucket{
			tokens:     l.capacity - 1,
			lastRefill: now,
		}

		return true
	}

	if now.Sub(b.lastRefill) >= l.refillDur {
		b.tokens = l.capacity
		b.lastRefill = now
	}

	if b.tokens <= 0 {
		return false
	}

	b.tokens--

	return true
}

// Middleware rejects clients that drained their bucket with 429.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !l.Allow(ip) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
