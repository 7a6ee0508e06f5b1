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

// Package main implements the trello-export command-line interface.
// This tool reads board and card metadata plus user comment history from
// the Trello API and presents or persists the results.
//
// The CLI supports:
//   - Listing the cards of a board with their derived creation dates (cards)
//   - Exporting a user's full comment history on a board to JSON (comments)
//   - Credentials via flags, environment variables, or a dotenv file
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	trello-export cards [flags]
//	trello-export comments <username> [flags]
//
// Example:
//
//	export TRELLO_API_KEY=your_key
//	export TRELLO_API_TOKEN=your_token
//	export TRELLO_BOARD_ID=your_board
//	trello-export comments john_smith
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Credentials, missing configuration, not-found, or rate limit error
//   - 3: Network error
package main
