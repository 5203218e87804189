package turbine

import "context"

// Translator converts a unified Request into one provider-specific HTTP
// exchange and parses the reply back into a Response.
//
// The credential and base URL are bound at construction; a Translator holds
// no mutable state afterwards, so a single instance is safe for concurrent
// use. Send blocks until the provider replies or ctx is cancelled, and never
// retries: every failure is returned as one of this package's typed errors.
type Translator interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}
