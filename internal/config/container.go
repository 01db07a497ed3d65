package config

import (
	"exmora-backend/internal/domain"
	"exmora-backend/internal/repository"
	"exmora-backend/internal/service"
	"exmora-backend/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config           domain.Config
	Logger           domain.Logger
	SessionStore     domain.SessionStore
	RateLimiter      domain.RateLimiter
	TextExtractor    domain.TextExtractor
	CompletionClient domain.CompletionClient
	ChatService      domain.ChatService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	sessionStore := service.NewSessionStore()
	rateLimiter := service.NewRateLimiter(config.GetRateLimitMax(), config.GetRateLimitWindow())
	textExtractor := service.NewPDFService(appLogger, config.GetExtractTimeout())
	completionClient := repository.NewOpenRouterClient(config, appLogger)
	chatService := service.NewChatService(sessionStore, completionClient, appLogger)

	return &Container{
		Config:           config,
		Logger:           appLogger,
		SessionStore:     sessionStore,
		RateLimiter:      rateLimiter,
		TextExtractor:    textExtractor,
		CompletionClient: completionClient,
		ChatService:      chatService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
