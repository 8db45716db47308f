package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hopa/internal/models/request_models"
	"hopa/internal/models/response_models"
	"hopa/pkg/utils"
)

// ProxyClient sends completions through another hopa instance's
// /ai/kimi/chat endpoint instead of calling a model provider directly.
// This is the client half of the proxy envelope: non-2xx replies surface as
// RemoteServiceError, 2xx replies missing the success/response fields as
// MalformedEnvelopeError, and the response text is returned untouched.
type ProxyClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewProxyClient(baseURL string) *ProxyClient {
	return &ProxyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: completionTimeout,
		},
	}
}

func (p *ProxyClient) Complete(ctx context.Context, messages []request_models.ChatMessage, opts *CompletionOptions) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("message list cannot be empty")
	}

	payload := request_models.ChatRequest{Messages: messages}
	if opts != nil {
		payload.Temperature = opts.Temperature
		payload.MaxTokens = opts.MaxTokens
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/ai/kimi/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &utils.RemoteServiceError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var envelope response_models.ChatEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return "", &utils.MalformedEnvelopeError{Reason: "response is not a JSON envelope"}
	}
	if !envelope.Success {
		reason := envelope.Message
		if reason == "" {
			reason = "success=false without message"
		}
		return "", &utils.MalformedEnvelopeError{Reason: reason}
	}
	if envelope.Response == "" {
		return "", &utils.MalformedEnvelopeError{Reason: "missing response field"}
	}

	return envelope.Response, nil
}
