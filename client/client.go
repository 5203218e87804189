package client

import (
	"context"
	"net/http"
	"os"

	"github.com/turbinehq/turbine"
	"github.com/turbinehq/turbine/internal/provider/anthropic"
	"github.com/turbinehq/turbine/internal/provider/gemini"
	"github.com/turbinehq/turbine/internal/provider/groq"
	"github.com/turbinehq/turbine/internal/provider/openai"
)

// Config holds configuration for creating a Client.
type Config struct {
	// Provider selects which backend the client talks to.
	Provider turbine.Provider

	// APIKey is the credential for the provider. When empty, the provider's
	// environment variable ({PROVIDER}_API_KEY) is consulted instead.
	APIKey string

	// DefaultModel is used by the Send and SendWithSystem conveniences.
	// SendRequest ignores it.
	DefaultModel string

	// BaseURL overrides the provider's API base URL. Mainly for tests.
	BaseURL string

	// HTTPClient overrides the underlying HTTP client. The library sets no
	// internal timeout; cancellation and deadlines are the caller's concern
	// via context or a custom client here.
	HTTPClient *http.Client
}

// Client dispatches unified requests to one provider. It holds the resolved
// provider and credential for its lifetime; all fields are read-only after
// construction.
type Client struct {
	provider     turbine.Provider
	translator   turbine.Translator
	defaultModel string
}

// New creates a client for the configured provider. The credential must be
// available at construction: explicitly in cfg.APIKey or via the provider's
// environment variable, otherwise a *turbine.CredentialMissingError is
// returned.
func New(cfg Config) (*Client, error) {
	key := cfg.APIKey
	if key == "" {
		key = os.Getenv(cfg.Provider.EnvVar())
	}
	if key == "" {
		return nil, &turbine.CredentialMissingError{Provider: cfg.Provider}
	}

	translator, err := newTranslator(cfg, key)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider:     cfg.Provider,
		translator:   translator,
		defaultModel: cfg.DefaultModel,
	}, nil
}

// FromModel creates a client from a model string such as "openai/gpt-4o-mini"
// or a bare name like "claude-sonnet-4-5". The resolved bare model name
// becomes the client's default model and the credential is read from the
// provider's environment variable.
func FromModel(modelString string) (*Client, error) {
	provider, model, err := turbine.ResolveModel(modelString)
	if err != nil {
		return nil, err
	}
	return New(Config{Provider: provider, DefaultModel: model})
}

// FromModelWithKey is FromModel with an explicit API key.
func FromModelWithKey(modelString, apiKey string) (*Client, error) {
	provider, model, err := turbine.ResolveModel(modelString)
	if err != nil {
		return nil, err
	}
	return New(Config{Provider: provider, APIKey: apiKey, DefaultModel: model})
}

func newTranslator(cfg Config, apiKey string) (turbine.Translator, error) {
	switch cfg.Provider {
	case turbine.ProviderOpenAI:
		return openai.New(apiKey, compatOptions(cfg)...), nil
	case turbine.ProviderGroq:
		return groq.New(apiKey, compatOptions(cfg)...), nil
	case turbine.ProviderAnthropic:
		var opts []anthropic.ClientOption
		if cfg.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(cfg.BaseURL))
		}
		if cfg.HTTPClient != nil {
			opts = append(opts, anthropic.WithHTTPClient(cfg.HTTPClient))
		}
		return anthropic.New(apiKey, opts...), nil
	case turbine.ProviderGemini:
		var opts []gemini.ClientOption
		if cfg.BaseURL != "" {
			opts = append(opts, gemini.WithBaseURL(cfg.BaseURL))
		}
		if cfg.HTTPClient != nil {
			opts = append(opts, gemini.WithHTTPClient(cfg.HTTPClient))
		}
		return gemini.New(apiKey, opts...), nil
	default:
		return nil, &turbine.UnknownProviderError{Input: string(cfg.Provider)}
	}
}

func compatOptions(cfg Config) []openai.ClientOption {
	var opts []openai.ClientOption
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, openai.WithHTTPClient(cfg.HTTPClient))
	}
	return opts
}

// Provider returns the provider this client is bound to.
func (c *Client) Provider() turbine.Provider { return c.provider }

// DefaultModel returns the model used by the Send conveniences, if any.
func (c *Client) DefaultModel() string { return c.defaultModel }

// SendRequest validates the request and dispatches it to the bound
// translator. The translator's result or error is returned unchanged.
func (c *Client) SendRequest(ctx context.Context, req *turbine.Request) (*turbine.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return c.translator.Send(ctx, req)
}

// Send dispatches a single user message with default parameters using the
// client's default model.
func (c *Client) Send(ctx context.Context, text string) (*turbine.Response, error) {
	if c.defaultModel == "" {
		return nil, &turbine.ValidationError{Field: "model", Reason: "has no default: construct with FromModel or use SendRequest"}
	}
	req := turbine.NewRequest(c.defaultModel).
		WithMessage(turbine.NewUserMessage(text))
	return c.SendRequest(ctx, &req)
}

// SendWithSystem dispatches one system prompt and one user message using the
// client's default model.
func (c *Client) SendWithSystem(ctx context.Context, systemText, userText string) (*turbine.Response, error) {
	if c.defaultModel == "" {
		return nil, &turbine.ValidationError{Field: "model", Reason: "has no default: construct with FromModel or use SendRequest"}
	}
	req := turbine.NewRequest(c.defaultModel).
		WithSystemPrompt(systemText).
		WithMessage(turbine.NewUserMessage(userText))
	return c.SendRequest(ctx, &req)
}
