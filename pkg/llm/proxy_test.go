package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopa/internal/models/request_models"
	"hopa/pkg/utils"
)

func chatMessages() []request_models.ChatMessage {
	return []request_models.ChatMessage{
		{Role: request_models.RoleSystem, Content: "you are a planner"},
		{Role: request_models.RoleUser, Content: "plan something"},
	}
}

func TestProxyClientSuccess(t *testing.T) {
	var gotPath string
	var gotBody request_models.ChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"response":"raw completion text"}`))
	}))
	defer srv.Close()

	client := NewProxyClient(srv.URL)
	out, err := client.Complete(context.Background(), chatMessages(), nil)

	require.NoError(t, err)
	assert.Equal(t, "raw completion text", out)
	assert.Equal(t, "/ai/kimi/chat", gotPath)
	assert.Len(t, gotBody.Messages, 2)
	assert.Equal(t, request_models.RoleSystem, gotBody.Messages[0].Role)
}

func TestProxyClientForwardsOptions(t *testing.T) {
	var gotBody request_models.ChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"success":true,"response":"ok"}`))
	}))
	defer srv.Close()

	temperature := float32(0.7)
	maxTokens := 2000
	client := NewProxyClient(srv.URL)
	_, err := client.Complete(context.Background(), chatMessages(), &CompletionOptions{
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})

	require.NoError(t, err)
	require.NotNil(t, gotBody.Temperature)
	assert.InDelta(t, 0.7, float64(*gotBody.Temperature), 0.001)
	require.NotNil(t, gotBody.MaxTokens)
	assert.Equal(t, 2000, *gotBody.MaxTokens)
}

func TestProxyClientNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("unavailable"))
	}))
	defer srv.Close()

	client := NewProxyClient(srv.URL)
	_, err := client.Complete(context.Background(), chatMessages(), nil)

	var remoteErr *utils.RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusServiceUnavailable, remoteErr.StatusCode)
	assert.Equal(t, "unavailable", remoteErr.Body)
}

func TestProxyClientMalformedEnvelope(t *testing.T) {
	cases := map[string]string{
		"not json":         `this is not json`,
		"missing response": `{"success":true}`,
		"success false":    `{"success":false,"message":"quota exceeded"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			client := NewProxyClient(srv.URL)
			_, err := client.Complete(context.Background(), chatMessages(), nil)

			var envErr *utils.MalformedEnvelopeError
			require.ErrorAs(t, err, &envErr)
		})
	}
}

func TestProxyClientEmptyMessages(t *testing.T) {
	client := NewProxyClient("http://localhost:0")
	_, err := client.Complete(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestProxyClientContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewProxyClient(srv.URL)
	_, err := client.Complete(ctx, chatMessages(), nil)
	assert.Error(t, err)
}
