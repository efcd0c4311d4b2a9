package n2yo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a caller-supplied parameter that violates a
	// precondition. It is returned before any network call is made.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingField reports a response that parsed as JSON but lacks a
	// top-level field the endpoint is documented to return.
	ErrMissingField = errors.New("response missing expected field")
)

// TransportError reports a failed HTTP exchange: either the request itself
// errored (Err is set) or the service answered with a non-2xx status.
// The URL is stored with the API key redacted.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("n2yo request %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("n2yo request %s returned status %d", e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }
