package parallax

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	ErrMissingAPIKey   = errors.New("parallax: api key is required")
	ErrMissingAPIHost  = errors.New("parallax: api host is required")
	ErrInvalidEndpoint = errors.New("parallax: endpoint must start with /")
	ErrInvalidTask     = errors.New("parallax: task must encode to a JSON object")
	ErrInvalidProxy    = errors.New("parallax: invalid proxy address")
)

// =============================================================================
// API Errors
// =============================================================================

// StatusError is returned when the API answers with a status other than 200.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d returned from parallax api: %s", e.StatusCode, e.Body)
}

// APIError is returned when the API answers 200 with "error": true.
type APIError struct {
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api responded with error on %s, error message: %s", e.Endpoint, e.Message)
}

// =============================================================================
// Fatal Errors
// =============================================================================

// FatalError represents an error that should stop the caller immediately.
// These are billing/authentication issues where retrying won't help.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// NewFatalError wraps an error as fatal.
func NewFatalError(err error) error {
	return &FatalError{Err: err}
}

// IsFatalError checks if the error is a fatal error that should stop the caller.
func IsFatalError(err error) bool {
	if err == nil {
		return false
	}
	var fe *FatalError
	return errors.As(err, &fe)
}

// fatalErrorStrings contains substrings that indicate a fatal error.
var fatalErrorStrings = []string{
	"invalid api key",
	"invalid auth",
	"key expired",
	"no requests left",
	"insufficient balance",
	"access denied",
}

// ContainsFatalErrorString checks if an error message contains a fatal error indicator.
func ContainsFatalErrorString(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	for _, s := range fatalErrorStrings {
		if strings.Contains(errStr, s) {
			return true
		}
	}
	return false
}

// =============================================================================
// Retryable Errors
// =============================================================================

// retryableErrorPatterns contains error message substrings that indicate retryable errors.
var retryableErrorPatterns = []string{
	"connection refused",
	"connection reset",
	"no such host",
	"i/o timeout",
	"TLS handshake timeout",
	"EOF",
	"malformed HTTP response",
	"transport connection broken",
	"use of closed network connection",
}

// IsRetryableError checks if the error is a temporary transport failure.
// API errors and fatal errors are never retryable.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if IsFatalError(err) || ContainsFatalErrorString(err) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == 429 || statusErr.StatusCode >= 500
	}

	if isNetworkTimeout(err) {
		return true
	}

	return containsRetryablePattern(err.Error())
}

func isNetworkTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

func containsRetryablePattern(errStr string) bool {
	for _, pattern := range retryableErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}
