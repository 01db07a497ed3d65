package handler

import (
	"net"
	"net/http"
	"strings"
	"time"

	"exmora-backend/internal/domain"

	"github.com/google/uuid"
)

// ClientIdentity resolves the identity the rate limiter keys on: the first
// X-Forwarded-For entry, then X-Real-IP, then the transport peer address.
// Forwarding headers are spoofable, so they are only honored when
// trustProxyHeaders is set — appropriate behind a controlled reverse proxy
// and nowhere else.
func ClientIdentity(r *http.Request, trustProxyHeaders bool) string {
	if trustProxyHeaders {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			if ip := strings.TrimSpace(parts[0]); ip != "" {
				return ip
			}
		}
		if rip := strings.TrimSpace(r.Header.Get("X-Real-IP")); rip != "" {
			return rip
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// RateLimitMiddleware gates requests before any business logic runs. A
// rejected request is answered here and never reaches session lookup or
// the upstream call.
func RateLimitMiddleware(limiter domain.RateLimiter, trustProxyHeaders bool, logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := ClientIdentity(r, trustProxyHeaders)
			if !limiter.CheckAndRecord(clientID) {
				logger.Warn("Rate limit exceeded", "client", clientID, "path", r.URL.Path)
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"detail": "Rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoggingMiddleware logs every request with a generated request id.
func LoggingMiddleware(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			logger.Info("Request handled",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
			)
		})
	}
}

// statusWriter captures the response status for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
