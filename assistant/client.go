package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultSystemPrompt = "You are the FinanceFlow support assistant. " +
	"Answer questions about budgets, wallets, transactions and reports. " +
	"Be concise and never invent account data."

// Client calls a hosted generative-text model for the support chat. Each call
// is a single shot: the system prompt plus the concatenated history goes out,
// free text comes back. No orchestration or state lives here.
type Client struct {
	baseURL      string
	apiKey       string
	model        string
	systemPrompt string
	httpClient   *http.Client
	logger       zerolog.Logger
}

// NewClient creates a new assistant client.
func NewClient(baseURL, apiKey, model string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("assistant base URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("assistant API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("assistant model is required")
	}

	baseURL = strings.TrimRight(baseURL, "/")

	client := &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		model:        model,
		systemPrompt: defaultSystemPrompt,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		logger:       logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the support conversation.
type Message struct {
	Role    string `json:"role"` // RoleUser or RoleAssistant
	Content string `json:"content"`
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Chat sends the conversation so far plus the new user message and returns
// the model's reply as free text.
func (c *Client) Chat(ctx context.Context, history []Message, userMessage string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", fmt.Errorf("empty message")
	}

	prompt := c.buildPrompt(history, userMessage)

	body, err := json.Marshal(generateRequest{Model: c.model, Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug().Int("history_turns", len(history)).Str("model", c.model).Msg("Calling assistant model")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant request failed with status %d: %s", resp.StatusCode, string(data))
	}

	var gr generateResponse
	if err := json.Unmarshal(data, &gr); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return gr.Text, nil
}

// buildPrompt assembles the system prompt and conversation into the single
// text block the hosted model expects.
func (c *Client) buildPrompt(history []Message, userMessage string) string {
	var sb strings.Builder
	sb.WriteString(c.systemPrompt)
	sb.WriteString("\n\n")

	for _, msg := range history {
		switch msg.Role {
		case RoleAssistant:
			sb.WriteString("Assistant: ")
		default:
			sb.WriteString("User: ")
		}
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}

	sb.WriteString("User: ")
	sb.WriteString(userMessage)
	sb.WriteString("\nAssistant:")
	return sb.String()
}
