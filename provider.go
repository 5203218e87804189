package turbine

import "strings"

// Provider identifies an LLM provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers. The set is closed: each value maps to exactly one
// translator implementation, base URL, auth scheme, and credential env var.
const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
	ProviderGroq      Provider = "groq"
)

// BaseURL returns the provider's API base URL.
func (p Provider) BaseURL() string {
	switch p {
	case ProviderOpenAI:
		return "https://api.openai.com/v1"
	case ProviderAnthropic:
		return "https://api.anthropic.com/v1"
	case ProviderGemini:
		return "https://generativelanguage.googleapis.com/v1beta"
	case ProviderGroq:
		return "https://api.groq.com/openai/v1"
	default:
		return ""
	}
}

// EnvVar returns the name of the environment variable holding the
// provider's API key.
func (p Provider) EnvVar() string {
	switch p {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderGroq:
		return "GROQ_API_KEY"
	default:
		return ""
	}
}

// ParseProvider matches a provider name case-insensitively.
// "google" is accepted as an alias for Gemini.
func ParseProvider(s string) (Provider, error) {
	switch strings.ToLower(s) {
	case "openai":
		return ProviderOpenAI, nil
	case "anthropic":
		return ProviderAnthropic, nil
	case "gemini", "google":
		return ProviderGemini, nil
	case "groq":
		return ProviderGroq, nil
	default:
		return "", &UnknownProviderError{Input: s}
	}
}
