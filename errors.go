package turbine

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed or out-of-range request field, or a
// provider-required field that is missing. It is always raised before any
// network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// UnknownProviderError reports a model string that matches no known provider.
// The resolver never guesses: sending to the wrong provider burns a real
// billed API call.
type UnknownProviderError struct {
	Input string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("cannot determine provider for %q: use the form \"provider/model\" (e.g. \"openai/gpt-4o-mini\")", e.Input)
}

// CredentialMissingError reports that no usable API key was available,
// neither explicitly nor via the provider's environment variable.
type CredentialMissingError struct {
	Provider Provider
}

func (e *CredentialMissingError) Error() string {
	return fmt.Sprintf("no API key for %s: set %s or pass one explicitly", e.Provider, e.Provider.EnvVar())
}

// NetworkError reports a transport-level failure: DNS, connection,
// or a timeout at the transport layer.
type NetworkError struct {
	Provider Provider
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error { return e.Err }

// ProviderError reports a non-success HTTP status from the remote service.
// Message carries the provider's own error text when its payload was
// parseable, otherwise the raw body.
type ProviderError struct {
	Provider Provider
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d: %s", e.Provider, e.Status, e.Message)
}

// ParseError reports a success status whose body does not match the
// expected shape for the provider.
type ParseError struct {
	Provider Provider
	Reason   string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected %s response: %s: %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("unexpected %s response: %s", e.Provider, e.Reason)
}

// Unwrap returns the underlying decode error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsCredentialMissing reports whether err is a CredentialMissingError.
func IsCredentialMissing(err error) bool {
	var ce *CredentialMissingError
	return errors.As(err, &ce)
}

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsParse reports whether err is a ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// StatusCodeOf returns the HTTP status from a ProviderError, or 0.
func StatusCodeOf(err error) int {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Status
	}
	return 0
}

// IsRetryable reports whether err looks transient: a transport failure,
// a rate limit, or a provider-side 5xx. The library performs no retries
// itself; this is a classification hook for callers that do.
func IsRetryable(err error) bool {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return true
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Status == 429 || (pe.Status >= 500 && pe.Status < 600)
	}
	return false
}
