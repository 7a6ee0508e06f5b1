package apierror

import (
	"errors"
	"fmt"
	"testing"

	trelloerrors "github.com/jstucken/trello-export/internal/errors"
)

func TestIsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "401 response", err: &trelloerrors.RequestError{StatusCode: 401}, want: true},
		{name: "403 response", err: &trelloerrors.RequestError{StatusCode: 403}, want: true},
		{
			name: "wrapped 401 response",
			err:  fmt.Errorf("GET /1/boards/abc: %w", &trelloerrors.RequestError{StatusCode: 401}),
			want: true,
		},
		{name: "credentials sentinel", err: trelloerrors.ErrInvalidCredentials, want: true},
		{name: "500 response", err: &trelloerrors.RequestError{StatusCode: 500}, want: false},
		{name: "unrelated error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "404 response", err: &trelloerrors.RequestError{StatusCode: 404}, want: true},
		{name: "not found sentinel", err: trelloerrors.ErrNotFound, want: true},
		{name: "401 response", err: &trelloerrors.RequestError{StatusCode: 401}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRateLimitError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "429 response", err: &trelloerrors.RequestError{StatusCode: 429}, want: true},
		{name: "rate limit sentinel", err: trelloerrors.ErrRateLimit, want: true},
		{name: "500 response", err: &trelloerrors.RequestError{StatusCode: 500}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsRateLimitError(tt.err); got != tt.want {
				t.Errorf("IsRateLimitError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:443: connect: connection refused"), want: true},
		{name: "dns failure", err: errors.New("lookup api.trello.com: no such host"), want: true},
		{name: "timeout", err: errors.New("context deadline exceeded (Client.Timeout exceeded while awaiting headers)"), want: true},
		{name: "tls failure", err: errors.New("tls handshake failure"), want: true},
		{name: "network sentinel", err: trelloerrors.ErrNetworkFailure, want: true},
		{name: "http status error", err: &trelloerrors.RequestError{StatusCode: 500}, want: false},
		{name: "unrelated error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
