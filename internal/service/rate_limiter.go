package service

import (
	"sync"
	"time"
)

// countRejected keeps the penalty behavior of the limiter: requests over
// the limit still bump the counter, so an abusive client stays rejected
// until the window rolls over instead of sneaking through once the count
// would otherwise decay. Flip to false for a strictly capped counter.
const countRejected = true

type rateWindow struct {
	count       int
	windowStart time.Time
}

// RateLimiter is a fixed-window request counter keyed by client identity.
// The window resets entirely once its duration has elapsed; there is no
// gradual decay. Entries are never evicted, matching the process-lifetime
// scope of the rest of the state.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
	max     int
	window  time.Duration
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing max requests per fixed window.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*rateWindow),
		max:     max,
		window:  window,
		now:     time.Now,
	}
}

// CheckAndRecord registers one request for the client and reports whether
// it is allowed. The decision and the counter update happen under one lock
// so concurrent requests from the same client cannot lose updates.
func (l *RateLimiter) CheckAndRecord(clientID string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[clientID]
	if !ok {
		l.windows[clientID] = &rateWindow{count: 1, windowStart: now}
		return true
	}

	if now.Sub(w.windowStart) > l.window {
		w.count = 1
		w.windowStart = now
		return true
	}

	w.count++
	if w.count > l.max {
		if !countRejected {
			w.count = l.max + 1
		}
		return false
	}
	return true
}
