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

// Package trello provides a client for the Trello REST API, covering the
// board, card, and member-action endpoints this tool consumes. It also
// carries the two pieces of domain logic built on top of the raw API:
// decoding an object's creation time from its identifier, and paginating
// a member's comment history with a "before" cursor.
//
// The package includes:
//   - A Client interface for board, card, and comment retrieval
//   - A REST implementation authenticated via key/token query parameters
//   - A mock client for testing
//   - FetchAllComments, the loop-until-partial-page pagination helper
//
// Basic usage:
//
//	client := trello.NewRESTClient(trello.DefaultBaseURL, key, token)
//	board, err := client.GetBoard(ctx, boardID)
//	if err != nil {
//	    // Handle error
//	}
//	comments, err := trello.FetchAllComments(ctx, client, "john_smith", board.ID, trello.CommentFetchOptions{})
package trello
