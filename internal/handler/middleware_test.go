package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// MockRateLimiter forces a decision and records the keys it saw.
type MockRateLimiter struct {
	allow bool
	keys  []string
}

func (m *MockRateLimiter) CheckAndRecord(clientID string) bool {
	m.keys = append(m.keys, clientID)
	return m.allow
}

func TestClientIdentity_PrefersFirstForwardedFor(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/ask", nil)
	r.RemoteAddr = "10.0.0.9:5555"
	r.Header.Set("X-Forwarded-For", " 1.2.3.4 , 5.6.7.8")
	r.Header.Set("X-Real-IP", "9.9.9.9")

	if got := ClientIdentity(r, true); got != "1.2.3.4" {
		t.Fatalf("expected first X-Forwarded-For entry, got %q", got)
	}
}

func TestClientIdentity_FallsBackToRealIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/ask", nil)
	r.RemoteAddr = "10.0.0.9:5555"
	r.Header.Set("X-Real-IP", "9.9.9.9")

	if got := ClientIdentity(r, true); got != "9.9.9.9" {
		t.Fatalf("expected X-Real-IP, got %q", got)
	}
}

func TestClientIdentity_FallsBackToRemoteAddrHost(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/ask", nil)
	r.RemoteAddr = "10.0.0.9:5555"

	if got := ClientIdentity(r, true); got != "10.0.0.9" {
		t.Fatalf("expected remote host, got %q", got)
	}
}

func TestClientIdentity_IgnoresHeadersWhenUntrusted(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/ask", nil)
	r.RemoteAddr = "10.0.0.9:5555"
	r.Header.Set("X-Forwarded-For", "1.2.3.4")
	r.Header.Set("X-Real-IP", "9.9.9.9")

	if got := ClientIdentity(r, false); got != "10.0.0.9" {
		t.Fatalf("expected headers ignored without proxy trust, got %q", got)
	}
}

func TestRateLimitMiddleware_RejectsWith429(t *testing.T) {
	limiter := &MockRateLimiter{allow: false}
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	mw := RateLimitMiddleware(limiter, true, NewMockHandlerLogger())

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/ask", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	mw(next).ServeHTTP(rec, r)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "{\"detail\":\"Rate limit exceeded\"}\n" {
		t.Fatalf("unexpected throttling body: %q", body)
	}
	if nextCalled {
		t.Fatal("rejected request must not reach the handler")
	}
}

func TestRateLimitMiddleware_AllowsThrough(t *testing.T) {
	limiter := &MockRateLimiter{allow: true}
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	mw := RateLimitMiddleware(limiter, true, NewMockHandlerLogger())

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/ask", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	mw(next).ServeHTTP(rec, r)

	if !nextCalled {
		t.Fatal("allowed request must reach the handler")
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "10.0.0.1" {
		t.Fatalf("expected limiter keyed by peer host, got %v", limiter.keys)
	}
}
