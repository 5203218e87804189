// Package gemini implements the translator for the Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/turbinehq/turbine"
)

// Client translates unified requests into Gemini generateContent exchanges.
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

// New creates a Gemini translator with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: turbine.ProviderGemini.BaseURL(),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"topP,omitempty"`
	MaxOutputTokens  int      `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Send issues one generateContent call and parses the reply.
func (c *Client) Send(ctx context.Context, req *turbine.Request) (*turbine.Response, error) {
	contents := buildContents(req)
	if len(contents) == 0 {
		return nil, &turbine.ValidationError{Field: "messages", Reason: "at least one user or assistant message is required"}
	}

	cfg := &generationConfig{
		Temperature:     req.Temperature,
		TopP:            req.TopP,
		MaxOutputTokens: req.MaxTokens,
	}
	if req.OutputFormat == turbine.OutputJSON {
		cfg.ResponseMimeType = "application/json"
	}

	body := generateContentRequest{
		Contents:         contents,
		GenerationConfig: cfg,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &turbine.ValidationError{Field: "request", Reason: err.Error()}
	}

	url := c.baseURL + "/models/" + req.Model + ":generateContent"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &turbine.NetworkError{Provider: turbine.ProviderGemini, Err: err}
	}
	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &turbine.NetworkError{Provider: turbine.ProviderGemini, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &turbine.NetworkError{Provider: turbine.ProviderGemini, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, providerError(resp.StatusCode, raw)
	}

	var out generateContentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &turbine.ParseError{Provider: turbine.ProviderGemini, Reason: "invalid JSON body", Err: err}
	}
	if len(out.Candidates) == 0 {
		return nil, &turbine.ParseError{Provider: turbine.ProviderGemini, Reason: "no candidates in response"}
	}
	if len(out.Candidates[0].Content.Parts) == 0 {
		return nil, &turbine.ParseError{Provider: turbine.ProviderGemini, Reason: "no parts in response"}
	}

	return &turbine.Response{
		Content: out.Candidates[0].Content.Parts[0].Text,
		Usage: &turbine.Usage{
			InputTokens:  out.UsageMetadata.PromptTokenCount,
			OutputTokens: out.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  out.UsageMetadata.TotalTokenCount,
		},
	}, nil
}

// buildContents maps the conversation into Gemini contents: user passes
// through, assistant becomes "model", and system-role messages are dropped.
// The dialect has no system slot, so the system prompt is prepended as plain
// text to the first user turn; when no user turn exists one is synthesized
// at the front rather than dropping the prompt.
func buildContents(req *turbine.Request) []content {
	var contents []content
	for _, m := range req.Messages {
		if m.Role == turbine.RoleSystem {
			continue
		}
		role := "user"
		if m.Role == turbine.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: m.Content}}})
	}

	if req.SystemPrompt != "" && len(contents) > 0 {
		injected := false
		for i := range contents {
			if contents[i].Role == "user" {
				contents[i].Parts[0].Text = req.SystemPrompt + "\n\n" + contents[i].Parts[0].Text
				injected = true
				break
			}
		}
		if !injected {
			contents = append([]content{{Role: "user", Parts: []part{{Text: req.SystemPrompt}}}}, contents...)
		}
	}
	return contents
}

func providerError(status int, raw []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return &turbine.ProviderError{Provider: turbine.ProviderGemini, Status: status, Message: envelope.Error.Message}
	}
	return &turbine.ProviderError{Provider: turbine.ProviderGemini, Status: status, Message: string(raw)}
}

var _ turbine.Translator = (*Client)(nil)
