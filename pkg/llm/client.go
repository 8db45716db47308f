package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hopa/internal/models/request_models"
)

// completionTimeout caps a single completion round-trip. The upstream
// providers impose no deadline of their own, and an unbounded wait leaves
// the quiz UI stuck on a loading state.
const completionTimeout = 30 * time.Second

type CompletionOptions struct {
	Temperature *float32
	MaxTokens   *int
}

// ChatCompleter delivers one ordered message sequence to a language model
// and returns the assistant's raw text. Implementations make exactly one
// network call per invocation; retry and fallback policy belongs to the
// pipeline services, not here.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []request_models.ChatMessage, opts *CompletionOptions) (string, error)
}

// ImageGenerator turns a text prompt into a hosted image URL.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req request_models.ImageRequest) (string, error)
}

// Config holds provider selection for the completion client factory.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// NewChatCompleter creates a completion client for the configured provider.
// "kimi" talks to Moonshot directly, "gemini" to Google, "proxy" to another
// hopa instance's /ai/kimi/chat endpoint.
func NewChatCompleter(cfg Config) (ChatCompleter, error) {
	switch strings.ToLower(cfg.Provider) {
	case "kimi":
		return NewKimiClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case "gemini":
		client, err := NewGeminiClient(cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	case "proxy":
		return NewProxyClient(cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'kimi', 'gemini' or 'proxy'", cfg.Provider)
	}
}
