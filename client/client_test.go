package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbinehq/turbine"
)

// chatStub serves an OpenAI-shaped chat completions reply and counts calls.
type chatStub struct {
	server *httptest.Server
	calls  atomic.Int64
	last   map[string]any
}

func newChatStub(t *testing.T, reply string) *chatStub {
	t.Helper()
	s := &chatStub{}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &s.last)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"role": "assistant", "content": reply}},
			},
			"usage": map[string]any{"prompt_tokens": 2, "completion_tokens": 3, "total_tokens": 5},
		})
	}))
	t.Cleanup(s.server.Close)
	return s
}

func TestNew(t *testing.T) {
	t.Run("explicit key", func(t *testing.T) {
		c, err := New(Config{Provider: turbine.ProviderOpenAI, APIKey: "sk-test"})
		require.NoError(t, err)
		assert.Equal(t, turbine.ProviderOpenAI, c.Provider())
		assert.Empty(t, c.DefaultModel())
	})

	t.Run("key from environment", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "env-key")
		c, err := New(Config{Provider: turbine.ProviderAnthropic})
		require.NoError(t, err)
		assert.Equal(t, turbine.ProviderAnthropic, c.Provider())
	})

	t.Run("explicit key wins over environment", func(t *testing.T) {
		t.Setenv("GROQ_API_KEY", "env-key")
		_, err := New(Config{Provider: turbine.ProviderGroq, APIKey: "explicit"})
		require.NoError(t, err)
	})

	t.Run("missing credential", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		_, err := New(Config{Provider: turbine.ProviderGemini})

		var cme *turbine.CredentialMissingError
		require.ErrorAs(t, err, &cme)
		assert.Equal(t, turbine.ProviderGemini, cme.Provider)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New(Config{Provider: turbine.Provider("cohere"), APIKey: "key"})

		var upe *turbine.UnknownProviderError
		require.ErrorAs(t, err, &upe)
	})
}

func TestFromModel(t *testing.T) {
	t.Run("explicit prefix", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "env-key")
		c, err := FromModel("openai/gpt-4o-mini")
		require.NoError(t, err)
		assert.Equal(t, turbine.ProviderOpenAI, c.Provider())
		assert.Equal(t, "gpt-4o-mini", c.DefaultModel())
	})

	t.Run("inferred provider", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "env-key")
		c, err := FromModel("claude-3-5-sonnet-20241022")
		require.NoError(t, err)
		assert.Equal(t, turbine.ProviderAnthropic, c.Provider())
		assert.Equal(t, "claude-3-5-sonnet-20241022", c.DefaultModel())
	})

	t.Run("unresolvable model", func(t *testing.T) {
		_, err := FromModel("not-a-real-model")

		var upe *turbine.UnknownProviderError
		require.ErrorAs(t, err, &upe)
		assert.Equal(t, "not-a-real-model", upe.Input)
	})
}

func TestFromModelWithKey(t *testing.T) {
	c, err := FromModelWithKey("llama-3.3-70b-versatile", "gsk-test")
	require.NoError(t, err)
	assert.Equal(t, turbine.ProviderGroq, c.Provider())
	assert.Equal(t, "llama-3.3-70b-versatile", c.DefaultModel())
}

func TestSendRequest(t *testing.T) {
	t.Run("dispatches to the translator", func(t *testing.T) {
		stub := newChatStub(t, "pong")
		c, err := New(Config{
			Provider: turbine.ProviderOpenAI,
			APIKey:   "sk-test",
			BaseURL:  stub.server.URL,
		})
		require.NoError(t, err)

		req := turbine.NewRequest("gpt-4o-mini").
			WithMessage(turbine.NewUserMessage("ping"))

		resp, err := c.SendRequest(context.Background(), &req)
		require.NoError(t, err)
		assert.Equal(t, "pong", resp.Content)
		assert.Equal(t, int64(1), stub.calls.Load())
	})

	t.Run("invalid request never reaches the wire", func(t *testing.T) {
		stub := newChatStub(t, "unused")
		c, err := New(Config{
			Provider: turbine.ProviderOpenAI,
			APIKey:   "sk-test",
			BaseURL:  stub.server.URL,
		})
		require.NoError(t, err)

		req := turbine.NewRequest("gpt-4o-mini").
			WithMessage(turbine.NewUserMessage("ping")).
			WithTemperature(2.1)

		_, err = c.SendRequest(context.Background(), &req)

		var ve *turbine.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "temperature", ve.Field)
		assert.Zero(t, stub.calls.Load())
	})
}

func TestSend(t *testing.T) {
	t.Run("uses the default model", func(t *testing.T) {
		stub := newChatStub(t, "hi there")
		c, err := New(Config{
			Provider:     turbine.ProviderOpenAI,
			APIKey:       "sk-test",
			DefaultModel: "gpt-4o-mini",
			BaseURL:      stub.server.URL,
		})
		require.NoError(t, err)

		resp, err := c.Send(context.Background(), "hello")
		require.NoError(t, err)
		assert.Equal(t, "hi there", resp.Content)

		assert.Equal(t, "gpt-4o-mini", stub.last["model"])
		assert.Equal(t, float64(turbine.DefaultMaxTokens), stub.last["max_tokens"])
		msgs := stub.last["messages"].([]any)
		require.Len(t, msgs, 1)
		assert.Equal(t, "hello", msgs[0].(map[string]any)["content"])
	})

	t.Run("requires a default model", func(t *testing.T) {
		stub := newChatStub(t, "unused")
		c, err := New(Config{
			Provider: turbine.ProviderOpenAI,
			APIKey:   "sk-test",
			BaseURL:  stub.server.URL,
		})
		require.NoError(t, err)

		_, err = c.Send(context.Background(), "hello")

		var ve *turbine.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "model", ve.Field)
		assert.Zero(t, stub.calls.Load())
	})
}

func TestSendWithSystem(t *testing.T) {
	stub := newChatStub(t, "aye")
	c, err := New(Config{
		Provider:     turbine.ProviderOpenAI,
		APIKey:       "sk-test",
		DefaultModel: "gpt-4o-mini",
		BaseURL:      stub.server.URL,
	})
	require.NoError(t, err)

	resp, err := c.SendWithSystem(context.Background(), "Talk like a pirate.", "hello")
	require.NoError(t, err)
	assert.Equal(t, "aye", resp.Content)

	msgs := stub.last["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "Talk like a pirate.", msgs[0].(map[string]any)["content"])
	assert.Equal(t, "user", msgs[1].(map[string]any)["role"])
	assert.Equal(t, "hello", msgs[1].(map[string]any)["content"])
}
