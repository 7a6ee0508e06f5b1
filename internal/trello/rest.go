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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jstucken/trello-export/internal/apierror"
	trelloerrors "github.com/jstucken/trello-export/internal/errors"
	"github.com/jstucken/trello-export/pkg/version"
)

// maxResponseBytes caps how much of a single response body is read (10MB).
const maxResponseBytes = 10 * 1024 * 1024

// RESTClient implements the Client interface against the Trello REST API.
// Authentication uses the key/token query parameters Trello expects; they
// are injected by the transport so request-building code never sees them.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	inspector  apierror.Inspector
}

// NewRESTClient creates a Trello API client for the given endpoint and
// credentials. Pass DefaultBaseURL (or "") for the public API. The client is
// configured with:
//   - key/token query-parameter authentication on every request
//   - A User-Agent header for API compliance
//   - Response size limiting to prevent memory issues
//   - Optimized connection pooling for API performance
func NewRESTClient(baseURL, key, token string) *RESTClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &RESTClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: &credentialTransport{
				key:   key,
				token: token,
				base:  transport,
			},
		},
		inspector: apierror.NewInspector(),
	}
}

// GetBoard retrieves general information about a board.
func (c *RESTClient) GetBoard(ctx context.Context, boardID string) (*Board, error) {
	var board Board
	if err := c.get(ctx, "/1/boards/"+boardID, nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// ListCards retrieves every card belonging to a board.
func (c *RESTClient) ListCards(ctx context.Context, boardID string) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, "/1/boards/"+boardID+"/cards", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetCard retrieves the detail record for a single card.
func (c *RESTClient) GetCard(ctx context.Context, cardID string) (*Card, error) {
	var card Card
	if err := c.get(ctx, "/1/cards/"+cardID, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// ListMemberComments retrieves one page of commentCard actions created by
// the given member on the board named in the query.
func (c *RESTClient) ListMemberComments(ctx context.Context, username string, q CommentQuery) ([]CommentAction, error) {
	limit := q.Limit
	if limit <= 0 || limit > MaxCommentPageSize {
		limit = MaxCommentPageSize
	}

	params := url.Values{}
	params.Set("filter", "commentCard")
	params.Set("memberCreator", "true")
	params.Set("memberCreator_fields", "username,fullName")
	params.Set("board", "true")
	params.Set("board_fields", "name")
	params.Set("idBoard", q.BoardID)
	params.Set("limit", strconv.Itoa(limit))
	if q.Before != "" {
		params.Set("before", q.Before)
	}

	var actions []CommentAction
	if err := c.get(ctx, "/1/members/"+username+"/actions", params, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// get issues a GET request against the API and decodes the JSON response
// into v. Any non-200 status becomes a RequestError; there is no retry.
func (c *RESTClient) get(ctx context.Context, endpoint string, params url.Values, v interface{}) error {
	fullURL := c.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.inspector.IsNetworkError(err) {
			return fmt.Errorf("network error calling the Trello API (%v). Check your connection and try again: %w",
				err, trelloerrors.ErrNetworkFailure)
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %w", endpoint, &trelloerrors.RequestError{StatusCode: resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// credentialTransport adds the key/token query parameters and safety limits
// to every request.
type credentialTransport struct {
	key   string
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *credentialTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	q := req.URL.Query()
	q.Set("key", t.key)
	q.Set("token", t.token)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", fmt.Sprintf("trello-export/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseBytes,
		}
	}

	return resp, nil
}
