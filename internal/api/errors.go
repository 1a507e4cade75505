package api

import "fmt"

// RequestError is the single failure kind for backend calls. Network errors
// and non-2xx statuses all collapse into it; the message carries only the
// attempted operation, never the cause. The cause stays reachable through
// Unwrap for logging.
type RequestError struct {
	Verb     string
	Resource string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("failed to %s %s", e.Verb, e.Resource)
}

func (e *RequestError) Unwrap() error { return e.Err }
