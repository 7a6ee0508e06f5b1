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

// Board represents a Trello board. Only name and url are consumed by the
// card lister; the remaining fields are decoded for completeness since the
// API returns them on every board response.
type Board struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Desc     string `json:"desc,omitempty"`
	URL      string `json:"url"`
	ShortURL string `json:"shortUrl,omitempty"`
	Closed   bool   `json:"closed"`
}

// Card represents a Trello card as returned by the board-cards and
// card-detail endpoints. DateLastActivity is kept as the API's own string;
// the creation time is never stored because it is derived from ID on demand.
type Card struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	URL              string `json:"url"`
	ShortURL         string `json:"shortUrl,omitempty"`
	Closed           bool   `json:"closed"`
	BoardID          string `json:"idBoard"`
	ListID           string `json:"idList,omitempty"`
	DateLastActivity string `json:"dateLastActivity"`
}

// CommentAction represents a single commentCard action from the member
// actions feed. Date is deliberately a string, not a time.Time: it is echoed
// back verbatim as the "before" cursor on the next page request, and parsing
// it would risk reformatting the server's own value.
type CommentAction struct {
	ID              string      `json:"id"`
	MemberCreatorID string      `json:"idMemberCreator"`
	Type            string      `json:"type"`
	Date            string      `json:"date"`
	Data            CommentData `json:"data"`
	MemberCreator   *Member     `json:"memberCreator,omitempty"`
}

// CommentData holds the payload of a commentCard action: the comment text
// and the board and card it was made on.
type CommentData struct {
	Text  string       `json:"text"`
	Board *ActionBoard `json:"board,omitempty"`
	Card  *ActionCard  `json:"card,omitempty"`
}

// ActionBoard is the board summary embedded in an action payload.
type ActionBoard struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	ShortLink string `json:"shortLink,omitempty"`
}

// ActionCard is the card summary embedded in an action payload.
type ActionCard struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	ShortLink string `json:"shortLink,omitempty"`
}

// Member is the action creator as returned when memberCreator=true is set.
type Member struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
}

// CommentQuery configures a single member-actions request.
type CommentQuery struct {
	// BoardID restricts results to actions on a single board.
	BoardID string

	// Limit caps the number of records per page. Values outside
	// (0, MaxCommentPageSize] are replaced with MaxCommentPageSize,
	// the most the API allows per request.
	Limit int

	// Before restricts results to actions strictly older than this date.
	// Empty fetches the newest page. Use the Date of the last record of
	// the previous page to fetch the next one.
	Before string
}

const (
	// MaxCommentPageSize is the largest page the member-actions endpoint
	// serves in one request.
	MaxCommentPageSize = 1000

	// DefaultBaseURL is the public Trello API endpoint.
	DefaultBaseURL = "https://api.trello.com"
)
