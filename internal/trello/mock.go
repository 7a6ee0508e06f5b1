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

package trello

import (
	"context"
	"fmt"

	trelloerrors "github.com/jstucken/trello-export/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
// Comment pagination is scripted: each call to ListMemberComments serves the
// next entry of CommentPages, then empty pages once the script is exhausted.
type MockClient struct {
	// Data to return
	Board        *Board
	Cards        []Card
	CommentPages [][]CommentAction

	// Error to return from any call
	Err error

	// FailAfterPage, when > 0, makes ListMemberComments fail once that many
	// pages have already been served.
	FailAfterPage int

	// Track calls for verification
	CallCount    int
	LastUsername string
	LastQuery    CommentQuery
	Queries      []CommentQuery

	nextPage int
}

// NewMockClient creates a mock client with a small default board and card set.
func NewMockClient() *MockClient {
	return &MockClient{
		Board: &Board{
			ID:   "4d5ea62fd76aa1136000000c",
			Name: "Test Board",
			URL:  "https://trello.com/b/abcd1234/test-board",
		},
		Cards: []Card{
			{
				ID:               "4d5ea62fd76aa1136000000f",
				Name:             "Write release notes",
				URL:              "https://trello.com/c/aaaa1111/1-write-release-notes",
				BoardID:          "4d5ea62fd76aa1136000000c",
				DateLastActivity: "2023-02-09T03:31:10.254Z",
			},
			{
				ID:               "5e1fb5af9cc580ea2b000010",
				Name:             "Fix login bug",
				URL:              "https://trello.com/c/bbbb2222/2-fix-login-bug",
				BoardID:          "4d5ea62fd76aa1136000000c",
				DateLastActivity: "2023-03-01T11:05:44.118Z",
			},
		},
	}
}

// GetBoard implements the Client interface.
func (m *MockClient) GetBoard(ctx context.Context, boardID string) (*Board, error) {
	m.CallCount++
	if err := m.callError(ctx); err != nil {
		return nil, err
	}
	if m.Board == nil {
		return nil, fmt.Errorf("board %s: %w", boardID, trelloerrors.ErrNotFound)
	}
	return m.Board, nil
}

// ListCards implements the Client interface.
func (m *MockClient) ListCards(ctx context.Context, boardID string) ([]Card, error) {
	m.CallCount++
	if err := m.callError(ctx); err != nil {
		return nil, err
	}
	return m.Cards, nil
}

// GetCard implements the Client interface.
func (m *MockClient) GetCard(ctx context.Context, cardID string) (*Card, error) {
	m.CallCount++
	if err := m.callError(ctx); err != nil {
		return nil, err
	}
	for i := range m.Cards {
		if m.Cards[i].ID == cardID {
			return &m.Cards[i], nil
		}
	}
	return nil, fmt.Errorf("card %s: %w", cardID, trelloerrors.ErrNotFound)
}

// ListMemberComments implements the Client interface.
func (m *MockClient) ListMemberComments(ctx context.Context, username string, q CommentQuery) ([]CommentAction, error) {
	m.CallCount++
	m.LastUsername = username
	m.LastQuery = q
	m.Queries = append(m.Queries, q)

	if err := m.callError(ctx); err != nil {
		return nil, err
	}
	if m.FailAfterPage > 0 && m.nextPage >= m.FailAfterPage {
		return nil, fmt.Errorf("GET /1/members/%s/actions: %w", username, &trelloerrors.RequestError{StatusCode: 500})
	}

	if m.nextPage >= len(m.CommentPages) {
		return []CommentAction{}, nil
	}
	page := m.CommentPages[m.nextPage]
	m.nextPage++
	return page, nil
}

func (m *MockClient) callError(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return m.Err
}
