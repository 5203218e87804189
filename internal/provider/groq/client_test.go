package groq

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbinehq/turbine"
	"github.com/turbinehq/turbine/internal/provider/openai"
)

func TestSendSpeaksChatCompletions(t *testing.T) {
	var captured map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer groq-key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"content": "fast"}},
			},
			"usage": map[string]any{
				"prompt_tokens":     3,
				"completion_tokens": 2,
				"total_tokens":      5,
			},
		})
	}
	server := httptest.NewServer(http.HandlerFunc(handler))
	defer server.Close()

	client := New("groq-key", openai.WithBaseURL(server.URL))

	req := turbine.NewRequest("llama-3.3-70b-versatile").
		WithMessage(turbine.NewUserMessage("Hi"))

	resp, err := client.Send(context.Background(), &req)
	require.NoError(t, err)
	assert.Equal(t, "fast", resp.Content)
	assert.Equal(t, 5, resp.Usage.TotalTokens)
	assert.Equal(t, "llama-3.3-70b-versatile", captured["model"])
}

func TestSendErrorsCarryGroqProvider(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "invalid api key"},
		})
	}
	server := httptest.NewServer(http.HandlerFunc(handler))
	defer server.Close()

	client := New("bad-key", openai.WithBaseURL(server.URL))

	req := turbine.NewRequest("mixtral-8x7b-32768").WithMessage(turbine.NewUserMessage("Hi"))
	_, err := client.Send(context.Background(), &req)

	var pe *turbine.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, turbine.ProviderGroq, pe.Provider)
	assert.Equal(t, 401, pe.Status)
	assert.Equal(t, "invalid api key", pe.Message)
}

func TestNewDefaultBaseURL(t *testing.T) {
	// Without an override the translator targets the Groq endpoint.
	assert.Equal(t, "https://api.groq.com/openai/v1", turbine.ProviderGroq.BaseURL())
}
