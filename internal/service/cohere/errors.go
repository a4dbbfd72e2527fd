package cohere

import (
	"encoding/json"
	"fmt"
)

// ShapeError indicates the chat endpoint answered with a body matching
// none of the known response shapes. The raw body is kept for the
// diagnostic surfaced to the caller.
type ShapeError struct {
	Body json.RawMessage
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected cohere response shape: %s", e.Body)
}

// StatusError indicates a non-2xx answer from the chat endpoint.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cohere http %d: %s", e.StatusCode, e.Body)
}

// TimeoutError indicates the chat call exceeded its deadline.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("cohere request timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }
