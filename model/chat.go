// Package model provides model constants for all supported LLM providers.
//
// Models know their provider, so they slot directly into the client:
//
//	c, err := client.New(client.Config{
//	    Provider:     model.ClaudeSonnet45.Provider(),
//	    DefaultModel: model.ClaudeSonnet45.String(),
//	})
package model

import "github.com/turbinehq/turbine"

// ChatModel represents a chat model from any provider.
type ChatModel struct {
	id       string
	provider turbine.Provider
}

// String returns the API identifier for this model.
func (m ChatModel) String() string { return m.id }

// Provider returns which provider this model belongs to.
func (m ChatModel) Provider() turbine.Provider { return m.provider }

// Anthropic Claude models.
var (
	ClaudeOpus45   = ChatModel{id: "claude-opus-4-5", provider: turbine.ProviderAnthropic}
	ClaudeSonnet45 = ChatModel{id: "claude-sonnet-4-5", provider: turbine.ProviderAnthropic}
	ClaudeHaiku45  = ChatModel{id: "claude-haiku-4-5", provider: turbine.ProviderAnthropic}

	// Pinned versions (use for production stability)
	ClaudeSonnet35_20241022 = ChatModel{id: "claude-3-5-sonnet-20241022", provider: turbine.ProviderAnthropic}

	// DefaultClaudeModel is the recommended default Anthropic model.
	DefaultClaudeModel = ClaudeSonnet45
)

// OpenAI GPT and O-series models.
var (
	GPT4o     = ChatModel{id: "gpt-4o", provider: turbine.ProviderOpenAI}
	GPT4oMini = ChatModel{id: "gpt-4o-mini", provider: turbine.ProviderOpenAI}
	GPT41     = ChatModel{id: "gpt-4.1", provider: turbine.ProviderOpenAI}
	O1        = ChatModel{id: "o1", provider: turbine.ProviderOpenAI}
	O1Mini    = ChatModel{id: "o1-mini", provider: turbine.ProviderOpenAI}

	// DefaultGPTModel is the recommended default OpenAI model.
	DefaultGPTModel = GPT4oMini
)

// Google Gemini models.
var (
	Gemini25Pro   = ChatModel{id: "gemini-2.5-pro", provider: turbine.ProviderGemini}
	Gemini25Flash = ChatModel{id: "gemini-2.5-flash", provider: turbine.ProviderGemini}
	GeminiFlash   = ChatModel{id: "gemini-flash", provider: turbine.ProviderGemini}

	// DefaultGeminiModel is the recommended default Google model.
	DefaultGeminiModel = Gemini25Flash
)

// Groq-hosted open models.
var (
	Llama33_70B = ChatModel{id: "llama-3.3-70b-versatile", provider: turbine.ProviderGroq}
	Llama31_8B  = ChatModel{id: "llama-3.1-8b-instant", provider: turbine.ProviderGroq}
	Mixtral8x7B = ChatModel{id: "mixtral-8x7b-32768", provider: turbine.ProviderGroq}

	// DefaultGroqModel is the recommended default Groq model.
	DefaultGroqModel = Llama33_70B
)
