// Package openai implements the translator for the OpenAI chat completions
// API. The codec is parameterized over provider label and base URL because
// Groq exposes the same dialect.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/turbinehq/turbine"
)

// jsonInstruction is injected into the system prompt when JSON output is
// requested; the response_format directive alone is not honored reliably.
const jsonInstruction = "You must respond with valid JSON only."

// Client translates unified requests into OpenAI-compatible HTTP exchanges.
type Client struct {
	provider turbine.Provider
	apiKey   string
	baseURL  string
	http     *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL. Used by tests to point at a stub
// server.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates an OpenAI translator with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	return NewCompatible(turbine.ProviderOpenAI, apiKey, turbine.ProviderOpenAI.BaseURL(), opts...)
}

// NewCompatible creates a translator for any provider speaking the OpenAI
// chat completions dialect.
func NewCompatible(provider turbine.Provider, apiKey, baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		provider: provider,
		apiKey:   apiKey,
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    *float64        `json:"temperature,omitempty"`
	TopP           *float64        `json:"top_p,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Send issues one chat completions call and parses the reply.
func (c *Client) Send(ctx context.Context, req *turbine.Request) (*turbine.Response, error) {
	if len(req.Messages) == 0 {
		return nil, &turbine.ValidationError{Field: "messages", Reason: "at least one message is required"}
	}

	body := chatCompletionRequest{
		Model:       req.Model,
		Messages:    c.buildMessages(req),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	}
	if req.OutputFormat == turbine.OutputJSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &turbine.ValidationError{Field: "request", Reason: err.Error()}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, &turbine.NetworkError{Provider: c.provider, Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &turbine.NetworkError{Provider: c.provider, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &turbine.NetworkError{Provider: c.provider, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, providerError(c.provider, resp.StatusCode, raw)
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &turbine.ParseError{Provider: c.provider, Reason: "invalid JSON body", Err: err}
	}
	if len(out.Choices) == 0 {
		return nil, &turbine.ParseError{Provider: c.provider, Reason: "no choices in response"}
	}

	return &turbine.Response{
		Content: out.Choices[0].Message.Content,
		Usage: &turbine.Usage{
			InputTokens:  out.Usage.PromptTokens,
			OutputTokens: out.Usage.CompletionTokens,
			TotalTokens:  out.Usage.TotalTokens,
		},
	}, nil
}

// buildMessages assembles the wire message list: the system prompt becomes a
// leading system-role message, and JSON mode extends (or synthesizes) that
// message with the explicit instruction.
func (c *Client) buildMessages(req *turbine.Request) []chatMessage {
	msgs := make([]chatMessage, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		msgs = append(msgs, chatMessage{Role: string(turbine.RoleSystem), Content: req.SystemPrompt})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, chatMessage{Role: string(m.Role), Content: m.Content})
	}

	if req.OutputFormat == turbine.OutputJSON {
		if msgs[0].Role == string(turbine.RoleSystem) {
			msgs[0].Content = msgs[0].Content + " " + jsonInstruction
		} else {
			msgs = append([]chatMessage{{Role: string(turbine.RoleSystem), Content: jsonInstruction}}, msgs...)
		}
	}
	return msgs
}

// providerError builds a ProviderError from an error body, preferring the
// provider's own message when the payload is parseable.
func providerError(provider turbine.Provider, status int, raw []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return &turbine.ProviderError{Provider: provider, Status: status, Message: envelope.Error.Message}
	}
	return &turbine.ProviderError{Provider: provider, Status: status, Message: string(raw)}
}

var _ turbine.Translator = (*Client)(nil)
