package request_models

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one role-tagged turn sent to a completion provider.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /ai/kimi/chat.
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

// ImageRequest is the body of POST /ai/doubao/generate-image.
type ImageRequest struct {
	Prompt         string  `json:"prompt"`
	Size           string  `json:"size,omitempty"`
	GuidanceScale  float64 `json:"guidance_scale,omitempty"`
	Watermark      bool    `json:"watermark,omitempty"`
	ResponseFormat string  `json:"response_format,omitempty"`
}
