package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		baseURL string
		apiKey  string
		model   string
		wantErr string
	}{
		{name: "valid", baseURL: "http://localhost:9000", apiKey: "k", model: "m"},
		{name: "missing URL", apiKey: "k", model: "m", wantErr: "base URL is required"},
		{name: "missing key", baseURL: "http://localhost:9000", model: "m", wantErr: "API key is required"},
		{name: "missing model", baseURL: "http://localhost:9000", apiKey: "k", wantErr: "model is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, tt.apiKey, tt.model, logger)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestChatPromptAssembly(t *testing.T) {
	var gotReq generateRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/generate", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(generateResponse{Text: "You can set one under Budgets."})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", "text-small", zerolog.Nop(),
		WithSystemPrompt("You are a test assistant."))
	require.NoError(t, err)

	history := []Message{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hello! How can I help?"},
	}
	reply, err := client.Chat(context.Background(), history, "How do I set a budget?")
	require.NoError(t, err)

	assert.Equal(t, "You can set one under Budgets.", reply)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "text-small", gotReq.Model)

	// System prompt first, history in order, new message last.
	assert.True(t, strings.HasPrefix(gotReq.Prompt, "You are a test assistant."))
	hiIdx := strings.Index(gotReq.Prompt, "User: Hi")
	helloIdx := strings.Index(gotReq.Prompt, "Assistant: Hello! How can I help?")
	askIdx := strings.Index(gotReq.Prompt, "User: How do I set a budget?")
	require.True(t, hiIdx >= 0 && helloIdx >= 0 && askIdx >= 0)
	assert.Less(t, hiIdx, helloIdx)
	assert.Less(t, helloIdx, askIdx)
	assert.True(t, strings.HasSuffix(gotReq.Prompt, "Assistant:"))
}

func TestChatErrors(t *testing.T) {
	t.Run("empty message rejected locally", func(t *testing.T) {
		client, err := NewClient("http://localhost:9000", "k", "m", zerolog.Nop())
		require.NoError(t, err)

		_, err = client.Chat(context.Background(), nil, "   ")
		require.Error(t, err)
	})

	t.Run("provider error propagated", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limited"}`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "k", "m", zerolog.Nop())
		require.NoError(t, err)

		_, err = client.Chat(context.Background(), nil, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})
}
