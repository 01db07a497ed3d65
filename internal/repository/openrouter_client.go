// Package repository holds clients for external collaborators.
package repository

import (
	"context"
	"errors"
	"net/http"
	"time"

	"exmora-backend/internal/domain"
	apperrors "exmora-backend/pkg/errors"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// completionTimeout bounds the whole upstream round trip.
	completionTimeout = 60 * time.Second

	completionTemperature = 0.3
)

// OpenRouterClient talks to OpenRouter's chat-completion API through the
// OpenAI-compatible wire protocol.
type OpenRouterClient struct {
	client *openai.Client
	model  string
	logger domain.Logger
}

// attributionTransport adds OpenRouter's optional attribution headers to
// every outgoing request.
type attributionTransport struct {
	referer   string
	title     string
	transport http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())
	if t.referer != "" {
		reqCopy.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		reqCopy.Header.Set("X-Title", t.title)
	}
	return t.transport.RoundTrip(reqCopy)
}

// NewOpenRouterClient creates a completion client from configuration.
func NewOpenRouterClient(config domain.Config, logger domain.Logger) *OpenRouterClient {
	clientConfig := openai.DefaultConfig(config.GetOpenRouterAPIKey())
	clientConfig.BaseURL = config.GetOpenRouterBaseURL()
	clientConfig.HTTPClient = &http.Client{
		Timeout: completionTimeout,
		Transport: &attributionTransport{
			referer:   config.GetOpenRouterReferer(),
			title:     config.GetOpenRouterTitle(),
			transport: http.DefaultTransport,
		},
	}

	return &OpenRouterClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  config.GetOpenRouterModel(),
		logger: logger,
	}
}

// Complete sends the prompt as a single user message and returns the text
// of the first completion choice. No retries: a failed call surfaces
// immediately and backing off is the caller's business.
func (c *OpenRouterClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: completionTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", c.wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewUpstreamError("OpenRouter API error", "empty response from model", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// wrapError keeps the raw upstream response body available so the handler
// can return it as diagnostics.
func (c *OpenRouterClient) wrapError(err error) error {
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		c.logger.Error("OpenRouter request failed", err, "status", reqErr.HTTPStatusCode)
		return apperrors.NewUpstreamError("OpenRouter API error", string(reqErr.Body), err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		c.logger.Error("OpenRouter request failed", err, "status", apiErr.HTTPStatusCode)
		return apperrors.NewUpstreamError("OpenRouter API error", apiErr.Message, err)
	}

	// Transport-level failure (connection refused, timeout, ...).
	c.logger.Error("OpenRouter request failed", err)
	return apperrors.NewUpstreamError("OpenRouter API error", err.Error(), err)
}
