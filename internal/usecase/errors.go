package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrUpstreamTransport covers timeouts, connection failures and non-2xx responses.
	ErrUpstreamTransport = errors.New("upstream transport failure")
	// ErrUpstreamSchema means the payload did not match the expected envelope.
	ErrUpstreamSchema = errors.New("upstream schema mismatch")
	// ErrEmptyResult is a well-formed payload with no matching records.
	ErrEmptyResult = errors.New("upstream returned no records")
)

// IsUpstreamFailure reports whether err is one of the failures that trigger fallback data.
func IsUpstreamFailure(err error) bool {
	return errors.Is(err, ErrUpstreamTransport) ||
		errors.Is(err, ErrUpstreamSchema) ||
		errors.Is(err, ErrEmptyResult) ||
		errors.Is(err, ErrDependencyUnavailable)
}
