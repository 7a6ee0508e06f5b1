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

import "context"

// Client defines the interface for interacting with the Trello API.
// This interface allows for easy mocking in tests.
type Client interface {
	// GetBoard retrieves general information about a board.
	GetBoard(ctx context.Context, boardID string) (*Board, error)

	// ListCards retrieves every card belonging to a board.
	ListCards(ctx context.Context, boardID string) ([]Card, error)

	// GetCard retrieves the detail record for a single card. Neither command
	// flow calls it today; it is kept as a documented capability of the API
	// surface.
	GetCard(ctx context.Context, cardID string) (*Card, error)

	// ListMemberComments retrieves one page of commentCard actions created by
	// the given member, filtered and paginated per the query. Use
	// FetchAllComments to walk every page.
	ListMemberComments(ctx context.Context, username string, q CommentQuery) ([]CommentAction, error)
}
