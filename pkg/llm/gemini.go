package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"hopa/internal/models/request_models"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClient is the alternative completion provider, selected with
// AI_PROVIDER=gemini when no Kimi key is available.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (g *GeminiClient) Complete(ctx context.Context, messages []request_models.ChatMessage, opts *CompletionOptions) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("message list cannot be empty")
	}

	m := g.client.GenerativeModel(g.model)
	if opts != nil {
		if opts.Temperature != nil {
			m.SetTemperature(*opts.Temperature)
		}
		if opts.MaxTokens != nil {
			m.SetMaxOutputTokens(int32(*opts.MaxTokens))
		}
	}

	// Gemini takes the system turn as a separate instruction; the remaining
	// turns are concatenated into one prompt since the pipeline never sends
	// multi-turn history.
	var userParts []string
	for _, msg := range messages {
		switch msg.Role {
		case request_models.RoleSystem:
			m.SystemInstruction = &genai.Content{
				Parts: []genai.Part{genai.Text(msg.Content)},
			}
		default:
			userParts = append(userParts, msg.Content)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctx, genai.Text(strings.Join(userParts, "\n\n")))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}
