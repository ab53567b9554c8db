package ocean

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error reported by the API. Every non-2xx response
// is surfaced as an APIError carrying the HTTP status alongside the
// provider's error identifier and message.
type APIError struct {
	StatusCode int    `json:"-"          yaml:"-"`
	ID         string `json:"id"         yaml:"id"`
	Message    string `json:"message"    yaml:"message"`
	RequestID  string `json:"request_id" yaml:"request_id"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("%s: %s (status %d)", e.ID, e.Message, e.StatusCode)
}

// Well-known API error identifiers.
const (
	ErrorIDNotFound     = "not_found"
	ErrorIDUnauthorized = "unauthorized"
	ErrorIDForbidden    = "forbidden"
	ErrorIDRateLimit    = "too_many_requests"
	ErrorIDUnprocessable = "unprocessable_entity"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrTokenRequired       = errors.New("access token is required")
	ErrTokenCannotRefresh  = errors.New("static token cannot be refreshed")
	ErrDropletNotFound     = errors.New("droplet not found")
	ErrDomainNotFound      = errors.New("domain not found")
	ErrKeyNotFound         = errors.New("key not found")
	ErrImageNotFound       = errors.New("image not found")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound || apiErr.ID == ErrorIDNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.ID == ErrorIDUnauthorized
	}

	return false
}

// IsRateLimited checks if the error is a rate limit rejection reported by
// the remote API. The client itself performs no rate limiting or retries.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.ID == ErrorIDRateLimit
	}

	return false
}

// ParseAPIError parses an error response body. The status code is attached
// to the result; an undecodable body becomes the message verbatim.
func ParseAPIError(statusCode int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	err := json.Unmarshal(data, apiErr)
	if err != nil || (apiErr.ID == "" && apiErr.Message == "") {
		apiErr.ID = ""
		apiErr.Message = string(data)
	}

	return apiErr
}
