package apierror

import (
	"errors"
	"net"
	"net/http"
	"strings"

	trelloerrors "github.com/jstucken/trello-export/internal/errors"
)

// Inspector provides methods for analyzing Trello API errors.
type Inspector interface {
	// IsAuthError returns true if the error represents an authentication or authorization failure.
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the error represents a resource not found error.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the error represents a rate limit error.
	IsRateLimitError(err error) bool

	// IsNetworkError returns true if the error represents a network connectivity error.
	IsNetworkError(err error) bool
}

// StatusInspector implements the Inspector interface for Trello API errors.
// Status-carrying errors are matched through the error chain; transport
// errors fall back to string matching.
type StatusInspector struct{}

// NewInspector creates a new StatusInspector.
func NewInspector() Inspector {
	return &StatusInspector{}
}

// statusCode extracts the HTTP status from the error chain, or 0 if none.
func statusCode(err error) int {
	var reqErr *trelloerrors.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

// IsAuthError checks if the error is an authentication or authorization error.
func (i *StatusInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	switch statusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return errors.Is(err, trelloerrors.ErrInvalidCredentials)
}

// IsNotFoundError checks if the error is a not found error.
func (i *StatusInspector) IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if statusCode(err) == http.StatusNotFound {
		return true
	}
	return errors.Is(err, trelloerrors.ErrNotFound)
}

// IsRateLimitError checks if the error is a rate limit error.
func (i *StatusInspector) IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	if statusCode(err) == http.StatusTooManyRequests {
		return true
	}
	return errors.Is(err, trelloerrors.ErrRateLimit)
}

// IsNetworkError checks if the error is a network connectivity error.
// Transport failures carry no HTTP status, so recognition relies on the
// net.Error interface and well-known substrings from the net package.
func (i *StatusInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, trelloerrors.ErrNetworkFailure) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable")
}
