package config

import (
	"os"
	"strconv"
	"time"

	"exmora-backend/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort        string
	LogLevel          string
	MaxFileSize       int64
	ExtractTimeout    time.Duration
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string
	OpenRouterReferer string
	OpenRouterTitle   string
	RateLimitMax      int
	RateLimitWindow   time.Duration
	TrustProxyHeaders bool
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:        getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		MaxFileSize:       getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		ExtractTimeout:    getEnvSecondsOrDefault("EXTRACT_TIMEOUT", 90*time.Second),
		OpenRouterAPIKey:  getEnvOrDefault("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL: getEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:   getEnvOrDefault("OPENROUTER_MODEL", "openai/gpt-3.5-turbo"),
		OpenRouterReferer: getEnvOrDefault("OPENROUTER_REFERER", "http://localhost"),
		OpenRouterTitle:   getEnvOrDefault("OPENROUTER_TITLE", "Exmora"),
		RateLimitMax:      getEnvIntOrDefault("RATE_LIMIT_MAX", 5),
		RateLimitWindow:   getEnvSecondsOrDefault("RATE_LIMIT_WINDOW", 300*time.Second),
		TrustProxyHeaders: getEnvBoolOrDefault("TRUST_PROXY_HEADERS", true),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetExtractTimeout returns the PDF extraction timeout
func (c *AppConfig) GetExtractTimeout() time.Duration {
	return c.ExtractTimeout
}

// GetOpenRouterAPIKey returns the OpenRouter API key
func (c *AppConfig) GetOpenRouterAPIKey() string {
	return c.OpenRouterAPIKey
}

// GetOpenRouterBaseURL returns the OpenRouter API base URL
func (c *AppConfig) GetOpenRouterBaseURL() string {
	return c.OpenRouterBaseURL
}

// GetOpenRouterModel returns the chat-completion model identifier
func (c *AppConfig) GetOpenRouterModel() string {
	return c.OpenRouterModel
}

// GetOpenRouterReferer returns the HTTP-Referer attribution header value
func (c *AppConfig) GetOpenRouterReferer() string {
	return c.OpenRouterReferer
}

// GetOpenRouterTitle returns the X-Title attribution header value
func (c *AppConfig) GetOpenRouterTitle() string {
	return c.OpenRouterTitle
}

// GetRateLimitMax returns the allowed requests per window
func (c *AppConfig) GetRateLimitMax() int {
	return c.RateLimitMax
}

// GetRateLimitWindow returns the fixed rate-limit window duration
func (c *AppConfig) GetRateLimitWindow() time.Duration {
	return c.RateLimitWindow
}

// GetTrustProxyHeaders reports whether forwarding headers are honored when
// resolving client identity. Only safe behind a controlled reverse proxy.
func (c *AppConfig) GetTrustProxyHeaders() bool {
	return c.TrustProxyHeaders
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvSecondsOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
