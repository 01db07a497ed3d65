package domain

import (
	"context"
	"time"
)

// SessionStore maps a session identifier to the text extracted from that
// session's document. A session holds at most one document; uploading again
// replaces the previous text.
type SessionStore interface {
	Put(sessionID, text string)
	Get(sessionID string) (string, bool)
	Clear(sessionID string)
}

// RateLimiter gates the question-answering endpoint per client identity.
// CheckAndRecord registers one request and reports whether it is allowed.
type RateLimiter interface {
	CheckAndRecord(clientID string) bool
}

// TextExtractor extracts plain text from raw PDF bytes.
type TextExtractor interface {
	ExtractText(ctx context.Context, pdfBytes []byte) (string, error)
}

// CompletionClient sends a prompt to the upstream chat-completion API and
// returns the answer text.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ChatService answers questions about the document stored for a session.
type ChatService interface {
	Ask(ctx context.Context, sessionID, question string) (*Answer, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMaxFileSize() int64
	GetExtractTimeout() time.Duration
	GetOpenRouterAPIKey() string
	GetOpenRouterBaseURL() string
	GetOpenRouterModel() string
	GetOpenRouterReferer() string
	GetOpenRouterTitle() string
	GetRateLimitMax() int
	GetRateLimitWindow() time.Duration
	GetTrustProxyHeaders() bool
}
