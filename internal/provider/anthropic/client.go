// Package anthropic implements the translator for the Anthropic messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/turbinehq/turbine"
)

const apiVersion = "2023-06-01"

// jsonInstruction is appended to the system field when JSON output is
// requested; the messages API has no native response-format directive.
const jsonInstruction = "You must respond with valid JSON only. Start your response with an opening brace {."

// Client translates unified requests into Anthropic messages API exchanges.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
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

// New creates an Anthropic translator with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: turbine.ProviderAnthropic.BaseURL(),
		http:    &http.Client{},
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

type messagesRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	System      string        `json:"system,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
	TopP        *float64      `json:"top_p,omitempty"`
}

type messagesResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Send issues one messages API call and parses the reply.
//
// max_tokens is required by the API; a request without one fails locally
// with a ValidationError rather than wasting a remote call.
func (c *Client) Send(ctx context.Context, req *turbine.Request) (*turbine.Response, error) {
	if req.MaxTokens <= 0 {
		return nil, &turbine.ValidationError{Field: "max_tokens", Reason: "is required for anthropic requests"}
	}

	// The messages array accepts no system role; system text travels in the
	// top-level field instead.
	msgs := make([]chatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Role == turbine.RoleSystem {
			continue
		}
		msgs = append(msgs, chatMessage{Role: string(m.Role), Content: m.Content})
	}
	if len(msgs) == 0 {
		return nil, &turbine.ValidationError{Field: "messages", Reason: "at least one user or assistant message is required"}
	}

	system := req.SystemPrompt
	if req.OutputFormat == turbine.OutputJSON {
		if system == "" {
			system = jsonInstruction
		} else {
			system = system + " " + jsonInstruction
		}
	}

	body := messagesRequest{
		Model:       req.Model,
		Messages:    msgs,
		MaxTokens:   req.MaxTokens,
		System:      system,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &turbine.ValidationError{Field: "request", Reason: err.Error()}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, &turbine.NetworkError{Provider: turbine.ProviderAnthropic, Err: err}
	}
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &turbine.NetworkError{Provider: turbine.ProviderAnthropic, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &turbine.NetworkError{Provider: turbine.ProviderAnthropic, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, providerError(resp.StatusCode, raw)
	}

	var out messagesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &turbine.ParseError{Provider: turbine.ProviderAnthropic, Reason: "invalid JSON body", Err: err}
	}
	if len(out.Content) == 0 {
		return nil, &turbine.ParseError{Provider: turbine.ProviderAnthropic, Reason: "no content in response"}
	}

	var content strings.Builder
	for _, block := range out.Content {
		content.WriteString(block.Text)
	}

	// The API reports input and output counts only; the total is their sum.
	return &turbine.Response{
		Content: content.String(),
		Usage: &turbine.Usage{
			InputTokens:  out.Usage.InputTokens,
			OutputTokens: out.Usage.OutputTokens,
			TotalTokens:  out.Usage.InputTokens + out.Usage.OutputTokens,
		},
	}, nil
}

func providerError(status int, raw []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return &turbine.ProviderError{Provider: turbine.ProviderAnthropic, Status: status, Message: envelope.Error.Message}
	}
	return &turbine.ProviderError{Provider: turbine.ProviderAnthropic, Status: status, Message: string(raw)}
}

var _ turbine.Translator = (*Client)(nil)
