package turbine

// OutputFormat selects between plain-text and JSON responses.
type OutputFormat string

const (
	// OutputText requests a plain text response (default).
	OutputText OutputFormat = "text"
	// OutputJSON requests structured JSON output. Each translator applies
	// its provider's convention: a response-format directive plus a
	// system-prompt instruction (OpenAI-compatible), a system-prompt
	// instruction alone (Anthropic), or a response MIME type (Gemini).
	OutputJSON OutputFormat = "json"
)

// DefaultMaxTokens is applied by NewRequest when the caller sets no limit.
const DefaultMaxTokens = 1024

// Request is a provider-agnostic chat request. Build it with NewRequest and
// the With* methods; each method returns an updated copy, so a constructed
// Request can be treated as immutable. Out-of-range values are accepted at
// construction and rejected with a ValidationError at send time rather than
// silently clamped.
type Request struct {
	// Model is the bare model identifier, required and non-empty.
	Model string
	// Messages is the ordered conversation. At least one entry is required
	// before dispatch.
	Messages []Message
	// SystemPrompt guides the model's behavior. Empty means unset. Each
	// translator places it according to its provider's dialect.
	SystemPrompt string
	// MaxTokens caps the generated output. Zero means unset; translators
	// that require the field fail fast locally instead of sending.
	MaxTokens int
	// Temperature is the sampling temperature, valid range [0.0, 2.0].
	Temperature *float64
	// TopP is the nucleus sampling threshold.
	TopP *float64
	// OutputFormat selects text or JSON output.
	OutputFormat OutputFormat
}

// NewRequest creates a request for the given model with DefaultMaxTokens
// and text output.
func NewRequest(model string) Request {
	return Request{
		Model:        model,
		MaxTokens:    DefaultMaxTokens,
		OutputFormat: OutputText,
	}
}

// WithMessage appends a single message to the conversation.
func (r Request) WithMessage(msg Message) Request {
	msgs := make([]Message, 0, len(r.Messages)+1)
	msgs = append(msgs, r.Messages...)
	msgs = append(msgs, msg)
	r.Messages = msgs
	return r
}

// WithMessages replaces the conversation with the given messages.
func (r Request) WithMessages(msgs []Message) Request {
	r.Messages = msgs
	return r
}

// WithSystemPrompt sets the system prompt.
func (r Request) WithSystemPrompt(prompt string) Request {
	r.SystemPrompt = prompt
	return r
}

// WithMaxTokens sets the maximum number of tokens to generate.
func (r Request) WithMaxTokens(n int) Request {
	r.MaxTokens = n
	return r
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func (r Request) WithTemperature(t float64) Request {
	r.Temperature = &t
	return r
}

// WithTopP sets the nucleus sampling threshold.
func (r Request) WithTopP(p float64) Request {
	r.TopP = &p
	return r
}

// WithOutputFormat sets the output format.
func (r Request) WithOutputFormat(f OutputFormat) Request {
	r.OutputFormat = f
	return r
}

// Validate checks the request invariants that hold for every provider.
// It is called by the client facade before dispatch and returns a
// *ValidationError describing the first violation found.
func (r *Request) Validate() error {
	if r.Model == "" {
		return &ValidationError{Field: "model", Reason: "must not be empty"}
	}
	if len(r.Messages) == 0 {
		return &ValidationError{Field: "messages", Reason: "at least one message is required"}
	}
	if r.MaxTokens < 0 {
		return &ValidationError{Field: "max_tokens", Reason: "must be greater than zero"}
	}
	if r.Temperature != nil && (*r.Temperature < 0.0 || *r.Temperature > 2.0) {
		return &ValidationError{Field: "temperature", Reason: "must be within [0.0, 2.0]"}
	}
	return nil
}
