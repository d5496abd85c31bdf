package omdb

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the OMDb client.
var (
	// ErrNoSelector is returned when a find query has neither an IMDb ID
	// nor a title to select on.
	ErrNoSelector = errors.New("find query requires an IMDb ID or a title")
)

// TransportError indicates the request never produced an HTTP response.
type TransportError struct {
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("omdb: transport error: %v", e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError indicates the server answered with a non-2xx status code.
// The response body is not decoded when this error is returned.
type StatusError struct {
	StatusCode int
}

// Error implements the error interface
func (e *StatusError) Error() string {
	text := http.StatusText(e.StatusCode)
	if text == "" {
		text = "unknown status"
	}
	return fmt.Sprintf("omdb: unexpected status %d: %s", e.StatusCode, text)
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsNotFound checks if the error indicates a not found response
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// DecodeError indicates the response body was not well-formed JSON or
// violated the flexible numeric decode rule.
type DecodeError struct {
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("omdb: failed to decode response: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError indicates the request and decode succeeded but OMDb itself
// reported a failure ("Response": "False"). Message carries the upstream
// "Error" text, or the literal "undefined" when the server sent none, so
// callers always get a non-empty diagnostic.
type APIError struct {
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("omdb: API error: %s", e.Message)
}
