package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"hopa/internal/models/request_models"
)

const (
	defaultKimiBaseURL = "https://api.moonshot.cn/v1"
	defaultKimiModel   = "moonshot-v1-8k"
)

// KimiClient talks to Moonshot's Kimi API, which is OpenAI-compatible.
type KimiClient struct {
	client *openai.Client
	model  string
}

func NewKimiClient(apiKey, model, baseURL string) *KimiClient {
	if model == "" {
		model = defaultKimiModel
	}
	if baseURL == "" {
		baseURL = defaultKimiBaseURL
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &KimiClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (k *KimiClient) Complete(ctx context.Context, messages []request_models.ChatMessage, opts *CompletionOptions) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("message list cannot be empty")
	}

	req := openai.ChatCompletionRequest{
		Model:    k.model,
		Messages: toOpenAIMessages(messages),
	}
	if opts != nil {
		if opts.Temperature != nil {
			req.Temperature = *opts.Temperature
		}
		if opts.MaxTokens != nil {
			req.MaxTokens = *opts.MaxTokens
		}
	}

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := k.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("kimi completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("kimi returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []request_models.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role == "" {
			role = request_models.RoleUser
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return out
}
