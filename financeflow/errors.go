package financeflow

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid financeflow configuration")
	// ErrNoConnection indicates connection failure
	ErrNoConnection = errors.New("failed to connect to financeflow")
	// ErrNotAuthenticated indicates a call that requires a token was made without one
	ErrNotAuthenticated = errors.New("not authenticated: no bearer token configured")
)

// APIError is the normalized error returned for every non-2xx response.
// Message and Code come from the server error body when it parses; otherwise
// Message is a generic fallback and Code is the HTTP status. Fields carries
// per-field validation messages when the server provides them.
type APIError struct {
	Message string            `json:"message"`
	Code    int               `json:"code,omitempty"`
	Fields  map[string]string `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("financeflow API error: code %d: %s (%d field errors)", e.Code, e.Message, len(e.Fields))
	}
	return fmt.Sprintf("financeflow API error: code %d: %s", e.Code, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.Code == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
}

// IsValidation checks if the error carries field-level validation messages
func (e *APIError) IsValidation() bool {
	return len(e.Fields) > 0
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound checks if err is an API error for a not found response
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsNotFound()
}

// IsUnauthorized checks if err is an API error for an authentication failure
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsUnauthorized()
}
