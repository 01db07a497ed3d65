package service

import (
	"sync"
	"testing"
	"time"
)

func newTestLimiter(max int, window time.Duration) (*RateLimiter, *time.Time) {
	limiter := NewRateLimiter(max, window)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	return limiter, &now
}

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	limiter, _ := newTestLimiter(5, 300*time.Second)

	for i := 1; i <= 5; i++ {
		if !limiter.CheckAndRecord("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if limiter.CheckAndRecord("1.2.3.4") {
		t.Fatal("6th request within the window should be rejected")
	}
}

func TestRateLimiter_RejectionsPersistWithinWindow(t *testing.T) {
	limiter, now := newTestLimiter(5, 300*time.Second)

	for i := 0; i < 5; i++ {
		limiter.CheckAndRecord("1.2.3.4")
	}

	// Keep hammering; every further request inside the window stays
	// rejected regardless of how many were already rejected.
	for i := 0; i < 10; i++ {
		*now = now.Add(10 * time.Second)
		if limiter.CheckAndRecord("1.2.3.4") {
			t.Fatalf("request %d over the limit should stay rejected", i+6)
		}
	}
}

func TestRateLimiter_WindowRollover(t *testing.T) {
	limiter, now := newTestLimiter(5, 300*time.Second)

	for i := 0; i < 6; i++ {
		limiter.CheckAndRecord("1.2.3.4")
	}

	// Exactly at the boundary the window has not rolled over yet.
	*now = now.Add(300 * time.Second)
	if limiter.CheckAndRecord("1.2.3.4") {
		t.Fatal("request exactly at the window boundary should still be rejected")
	}

	*now = now.Add(time.Second)
	if !limiter.CheckAndRecord("1.2.3.4") {
		t.Fatal("request after the window elapsed should start a fresh window")
	}

	// Fresh window means a fresh budget.
	for i := 2; i <= 5; i++ {
		if !limiter.CheckAndRecord("1.2.3.4") {
			t.Fatalf("request %d of the fresh window should be allowed", i)
		}
	}
	if limiter.CheckAndRecord("1.2.3.4") {
		t.Fatal("6th request of the fresh window should be rejected")
	}
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(5, 300*time.Second)

	for i := 0; i < 6; i++ {
		limiter.CheckAndRecord("1.2.3.4")
	}

	if !limiter.CheckAndRecord("5.6.7.8") {
		t.Fatal("a different client must have its own window")
	}
}

func TestRateLimiter_ConcurrentRequestsDontLoseUpdates(t *testing.T) {
	limiter := NewRateLimiter(5, 300*time.Second)

	const requests = 100
	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.CheckAndRecord("1.2.3.4") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 5 {
		t.Fatalf("expected exactly 5 allowed requests, got %d", allowed)
	}
}
