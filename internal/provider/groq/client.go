// Package groq implements the translator for the Groq API, which speaks the
// OpenAI-compatible chat completions dialect against its own base URL.
package groq

import (
	"github.com/turbinehq/turbine"
	"github.com/turbinehq/turbine/internal/provider/openai"
)

// New creates a Groq translator with the given API key.
func New(apiKey string, opts ...openai.ClientOption) *openai.Client {
	return openai.NewCompatible(turbine.ProviderGroq, apiKey, turbine.ProviderGroq.BaseURL(), opts...)
}
