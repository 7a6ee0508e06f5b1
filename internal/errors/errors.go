// Copyright 2025 Jono Stucken
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrInvalidCredentials indicates the Trello API rejected the key/token pair.
	// Maps to exit code 2.
	ErrInvalidCredentials = errors.New("invalid trello credentials")

	// ErrNotFound indicates the requested board, card, or member does not exist
	// or is not visible to the supplied credentials. Maps to exit code 2.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimit indicates the Trello API rate limit has been exceeded.
	// Maps to exit code 2.
	ErrRateLimit = errors.New("trello rate limit exceeded")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrMalformedID indicates an identifier does not carry a valid
	// 8-hex-character timestamp prefix.
	ErrMalformedID = errors.New("malformed trello identifier")

	// ErrMissingConfig indicates a required credential or input value is absent.
	// Fatal at startup; maps to exit code 2.
	ErrMissingConfig = errors.New("required configuration missing")
)

// RequestError represents a non-success HTTP response from the Trello API.
// The status code is preserved so callers can report it, and Unwrap maps
// well-known codes onto the classification sentinels above so errors.Is
// works through the chain.
type RequestError struct {
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Unwrap maps the status code to a classification sentinel, if one applies.
func (e *RequestError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrInvalidCredentials
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimit
	}
	return nil
}
