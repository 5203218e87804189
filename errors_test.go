package turbine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation",
			err:      &ValidationError{Field: "temperature", Reason: "must be within [0.0, 2.0]"},
			expected: "invalid request: temperature must be within [0.0, 2.0]",
		},
		{
			name:     "credential missing",
			err:      &CredentialMissingError{Provider: ProviderGroq},
			expected: "no API key for groq: set GROQ_API_KEY or pass one explicitly",
		},
		{
			name:     "provider",
			err:      &ProviderError{Provider: ProviderOpenAI, Status: 429, Message: "rate limited"},
			expected: "openai returned HTTP 429: rate limited",
		},
		{
			name:     "parse without cause",
			err:      &ParseError{Provider: ProviderGemini, Reason: "no candidates in response"},
			expected: "unexpected gemini response: no candidates in response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUnknownProviderError(t *testing.T) {
	err := &UnknownProviderError{Input: "not-a-real-model"}
	assert.Contains(t, err.Error(), "not-a-real-model")
	assert.Contains(t, err.Error(), "provider/model")
}

func TestErrorUnwrap(t *testing.T) {
	t.Run("network error unwraps its cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &NetworkError{Provider: ProviderOpenAI, Err: cause}
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("parse error unwraps its cause", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := &ParseError{Provider: ProviderAnthropic, Reason: "invalid JSON body", Err: cause}
		assert.True(t, errors.Is(err, cause))
	})
}

func TestErrorPredicates(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", &ValidationError{Field: "model", Reason: "must not be empty"})

	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsValidation(errors.New("plain")))

	assert.True(t, IsCredentialMissing(&CredentialMissingError{Provider: ProviderGemini}))
	assert.True(t, IsNetwork(&NetworkError{Provider: ProviderGroq, Err: errors.New("dns")}))
	assert.True(t, IsParse(&ParseError{Provider: ProviderOpenAI, Reason: "no choices"}))
	assert.False(t, IsParse(nil))
}

func TestStatusCodeOf(t *testing.T) {
	assert.Equal(t, 503, StatusCodeOf(&ProviderError{Provider: ProviderOpenAI, Status: 503}))
	assert.Equal(t, 0, StatusCodeOf(errors.New("not a provider error")))
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"network error", &NetworkError{Provider: ProviderOpenAI, Err: errors.New("timeout")}, true},
		{"rate limit", &ProviderError{Provider: ProviderGroq, Status: 429, Message: "slow down"}, true},
		{"server error", &ProviderError{Provider: ProviderAnthropic, Status: 503, Message: "overloaded"}, true},
		{"auth failure", &ProviderError{Provider: ProviderOpenAI, Status: 401, Message: "bad key"}, false},
		{"validation", &ValidationError{Field: "messages", Reason: "empty"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRetryable(tt.err))
		})
	}
}
