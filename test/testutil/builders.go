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

package testutil

import (
	"fmt"
	"time"

	"github.com/jstucken/trello-export/internal/trello"
)

const trelloDateLayout = "2006-01-02T15:04:05.000Z"

// BuildBoard creates a board fixture whose id encodes the given creation
// time in its first 8 hex characters.
func BuildBoard(name string, created time.Time) trello.Board {
	return trello.Board{
		ID:   idWithTimestamp(created, "b00000000c"),
		Name: name,
		URL:  "https://trello.com/b/abcd1234/" + name,
	}
}

// BuildCards creates n card fixtures on the given board, each created one
// hour after the previous one.
func BuildCards(boardID string, n int, firstCreated time.Time) []trello.Card {
	cards := make([]trello.Card, n)
	for i := 0; i < n; i++ {
		created := firstCreated.Add(time.Duration(i) * time.Hour)
		cards[i] = trello.Card{
			ID:               idWithTimestamp(created, fmt.Sprintf("c%09d", i)),
			Name:             fmt.Sprintf("Card %d", i+1),
			URL:              fmt.Sprintf("https://trello.com/c/card%04d", i+1),
			BoardID:          boardID,
			DateLastActivity: created.Add(24 * time.Hour).Format(trelloDateLayout),
		}
	}
	return cards
}

// BuildComments creates n comment fixtures in newest-first order, one
// minute apart, starting from newest.
func BuildComments(username string, n int, newest time.Time) []trello.CommentAction {
	comments := make([]trello.CommentAction, n)
	for i := 0; i < n; i++ {
		ts := newest.Add(-time.Duration(i) * time.Minute)
		comments[i] = trello.CommentAction{
			ID:              idWithTimestamp(ts, fmt.Sprintf("a%09d", i)),
			MemberCreatorID: "member001",
			Type:            "commentCard",
			Date:            ts.Format(trelloDateLayout),
			Data: trello.CommentData{
				Text: fmt.Sprintf("comment number %d", i),
			},
			MemberCreator: &trello.Member{
				ID:       "member001",
				Username: username,
				FullName: "Test Member",
			},
		}
	}
	return comments
}

// idWithTimestamp builds a 24-char Trello-style id whose leading 8 hex
// characters encode the Unix time of created.
func idWithTimestamp(created time.Time, suffix string) string {
	id := fmt.Sprintf("%08x%s", created.Unix(), suffix)
	if len(id) > 24 {
		id = id[:24]
	}
	return id
}
