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

// Package testutil provides common test helpers for trello-export
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jstucken/trello-export/internal/trello"
)

// MockServer is a fake Trello API backed by in-memory fixtures. It serves
// the board, card, and member-action endpoints the exporter uses, including
// limit/before cursor pagination over the comment history.
type MockServer struct {
	*httptest.Server

	Board        trello.Board
	Cards        []trello.Card
	Comments     []trello.CommentAction // newest first
	RequestCount int32
}

// NewMockServer starts a fake Trello API around the given fixtures.
// Comments must be sorted newest first, matching the real API ordering.
func NewMockServer(t *testing.T, board trello.Board, cards []trello.Card, comments []trello.CommentAction) *MockServer {
	t.Helper()

	ms := &MockServer{
		Board:    board,
		Cards:    cards,
		Comments: comments,
	}
	ms.Server = httptest.NewServer(http.HandlerFunc(ms.handle))
	t.Cleanup(ms.Close)
	return ms
}

// Requests returns the number of API requests served so far.
func (m *MockServer) Requests() int {
	return int(atomic.LoadInt32(&m.RequestCount))
}

func (m *MockServer) handle(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&m.RequestCount, 1)

	if r.URL.Query().Get("key") == "" || r.URL.Query().Get("token") == "" {
		writeJSONError(w, http.StatusUnauthorized, "invalid key")
		return
	}

	path := r.URL.Path
	switch {
	case path == "/1/boards/"+m.Board.ID:
		writeJSON(w, m.Board)
	case path == "/1/boards/"+m.Board.ID+"/cards":
		writeJSON(w, m.Cards)
	case strings.HasPrefix(path, "/1/cards/"):
		m.handleCard(w, strings.TrimPrefix(path, "/1/cards/"))
	case strings.HasPrefix(path, "/1/members/") && strings.HasSuffix(path, "/actions"):
		m.handleActions(w, r)
	default:
		writeJSONError(w, http.StatusNotFound, "model not found")
	}
}

func (m *MockServer) handleCard(w http.ResponseWriter, cardID string) {
	for i := range m.Cards {
		if m.Cards[i].ID == cardID {
			writeJSON(w, m.Cards[i])
			return
		}
	}
	writeJSONError(w, http.StatusNotFound, "model not found")
}

// handleActions pages through the comment fixtures the way the real API
// does: newest first, at most limit records, and only records strictly
// older than the before cursor when one is given.
func (m *MockServer) handleActions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("filter") != "commentCard" {
		writeJSONError(w, http.StatusBadRequest, "unsupported filter")
		return
	}

	limit := 50
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			writeJSONError(w, http.StatusBadRequest, "invalid value for limit")
			return
		}
		limit = n
	}

	comments := m.Comments
	if boardID := q.Get("idBoard"); boardID != "" && boardID != m.Board.ID {
		comments = nil
	}

	// ISO 8601 dates with a fixed layout compare correctly as strings.
	if before := q.Get("before"); before != "" {
		start := len(comments)
		for i, c := range comments {
			if c.Date < before {
				start = i
				break
			}
		}
		comments = comments[start:]
	}

	if len(comments) > limit {
		comments = comments[:limit]
	}
	if comments == nil {
		comments = []trello.CommentAction{}
	}
	writeJSON(w, comments)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"message": %q}`, msg)
}

// NewErrorServer starts a server that answers every request with the given
// status code.
func NewErrorServer(t *testing.T, statusCode int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(http.StatusText(statusCode)))
	}))
	t.Cleanup(server.Close)
	return server
}
