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
	"hopa/pkg/utils"
)

const (
	defaultDoubaoBaseURL = "https://ark.cn-beijing.volces.com/api/v3"
	defaultDoubaoModel   = "doubao-seedream-3-0-t2i-250415"
	defaultImageSize     = "1024x1024"
)

// DoubaoClient generates images through Volcengine Ark's Doubao endpoint.
// Ark's image API carries guidance_scale and watermark fields the OpenAI
// SDK's image request cannot express, so the call is a plain HTTP POST.
type DoubaoClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewDoubaoClient(apiKey, model, baseURL string) *DoubaoClient {
	if model == "" {
		model = defaultDoubaoModel
	}
	if baseURL == "" {
		baseURL = defaultDoubaoBaseURL
	}
	return &DoubaoClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: completionTimeout,
		},
	}
}

type doubaoImageRequest struct {
	Model          string  `json:"model"`
	Prompt         string  `json:"prompt"`
	Size           string  `json:"size"`
	GuidanceScale  float64 `json:"guidance_scale,omitempty"`
	Watermark      bool    `json:"watermark"`
	ResponseFormat string  `json:"response_format,omitempty"`
}

type doubaoImageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (d *DoubaoClient) GenerateImage(ctx context.Context, req request_models.ImageRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("image prompt cannot be empty")
	}

	size := req.Size
	if size == "" {
		size = defaultImageSize
	}
	format := req.ResponseFormat
	if format == "" {
		format = "url"
	}

	body, err := json.Marshal(doubaoImageRequest{
		Model:          d.model,
		Prompt:         req.Prompt,
		Size:           size,
		GuidanceScale:  req.GuidanceScale,
		Watermark:      req.Watermark,
		ResponseFormat: format,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode image request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build image request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+d.apiKey)

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &utils.RemoteServiceError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var parsed doubaoImageResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &utils.MalformedEnvelopeError{Reason: "image response is not valid JSON"}
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("doubao: %s", parsed.Error.Message)
	}
	if len(parsed.Data) == 0 || parsed.Data[0].URL == "" {
		return "", &utils.MalformedEnvelopeError{Reason: "image response contains no URL"}
	}

	return parsed.Data[0].URL, nil
}
