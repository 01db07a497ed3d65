package service

import (
	"context"

	"exmora-backend/internal/domain"
)

// ChatService answers questions about the document stored for a session by
// building a prompt around the stored text and delegating to the
// completion API.
type ChatService struct {
	sessions   domain.SessionStore
	completion domain.CompletionClient
	logger     domain.Logger
}

// NewChatService creates a new chat service
func NewChatService(sessions domain.SessionStore, completion domain.CompletionClient, logger domain.Logger) *ChatService {
	return &ChatService{
		sessions:   sessions,
		completion: completion,
		logger:     logger,
	}
}

// Ask looks up the session's document text, builds the prompt and forwards
// it upstream. The rate gate runs in the transport layer before this is
// called; a throttled request never reaches here.
func (s *ChatService) Ask(ctx context.Context, sessionID, question string) (*domain.Answer, error) {
	text, found := s.sessions.Get(sessionID)
	// An empty extraction reads the same as a missing session: no usable
	// context, so don't waste an upstream call.
	if !found || text == "" {
		return nil, domain.ErrNoDocumentContext
	}

	prompt := BuildPrompt(text, question)

	answer, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("Completion call failed", err, "session_id", sessionID)
		return nil, err
	}

	return &domain.Answer{
		Question: question,
		Answer:   answer,
	}, nil
}
