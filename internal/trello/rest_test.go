package trello

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	trelloerrors "github.com/jstucken/trello-export/internal/errors"
)

func TestRESTClientAddsCredentials(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"key":   r.URL.Query().Get("key"),
			"token": r.URL.Query().Get("token"),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Board{ID: "4d5ea62fd76aa1136000000c", Name: "Test Board", URL: "https://trello.com/b/abcd1234"})
	}))
	defer server.Close()

	client := NewRESTClient(server.URL, "test-key", "test-token")
	board, err := client.GetBoard(context.Background(), "4d5ea62fd76aa1136000000c")
	if err != nil {
		t.Fatalf("GetBoard returned error: %v", err)
	}

	if gotQuery["key"] != "test-key" {
		t.Errorf("key param = %q, want test-key", gotQuery["key"])
	}
	if gotQuery["token"] != "test-token" {
		t.Errorf("token param = %q, want test-token", gotQuery["token"])
	}
	if board.Name != "Test Board" {
		t.Errorf("board.Name = %q, want Test Board", board.Name)
	}
}

func TestGetBoardPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(Board{ID: "abc"})
	}))
	defer server.Close()

	client := NewRESTClient(server.URL, "k", "t")
	if _, err := client.GetBoard(context.Background(), "abc"); err != nil {
		t.Fatalf("GetBoard returned error: %v", err)
	}
	if gotPath != "/1/boards/abc" {
		t.Errorf("path = %q, want /1/boards/abc", gotPath)
	}
}

func TestListCards(t *testing.T) {
	cards := []Card{
		{ID: "4d5ea62fd76aa1136000000f", Name: "one", URL: "https://trello.com/c/a", DateLastActivity: "2023-02-09T03:31:10.254Z"},
		{ID: "5e1fb5af9cc580ea2b000010", Name: "two", URL: "https://trello.com/c/b", DateLastActivity: "2023-03-01T11:05:44.118Z"},
	}

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(cards)
	}))
	defer server.Close()

	client := NewRESTClient(server.URL, "k", "t")
	got, err := client.ListCards(context.Background(), "board1")
	if err != nil {
		t.Fatalf("ListCards returned error: %v", err)
	}
	if gotPath != "/1/boards/board1/cards" {
		t.Errorf("path = %q, want /1/boards/board1/cards", gotPath)
	}
	if len(got) != 2 || got[0].Name != "one" || got[1].Name != "two" {
		t.Errorf("unexpected cards: %+v", got)
	}
}

func TestGetCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1/cards/card1" {
			t.Errorf("path = %q, want /1/cards/card1", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(Card{ID: "card1", Name: "detail"})
	}))
	defer server.Close()

	client := NewRESTClient(server.URL, "k", "t")
	card, err := client.GetCard(context.Background(), "card1")
	if err != nil {
		t.Fatalf("GetCard returned error: %v", err)
	}
	if card.Name != "detail" {
		t.Errorf("card.Name = %q, want detail", card.Name)
	}
}

func TestListMemberCommentsQuery(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1/members/john_smith/actions" {
			t.Errorf("path = %q, want /1/members/john_smith/actions", r.URL.Path)
		}
		q := r.URL.Query()
		got = map[string]string{
			"filter":        q.Get("filter"),
			"memberCreator": q.Get("memberCreator"),
			"board":         q.Get("board"),
			"idBoard":       q.Get("idBoard"),
			"limit":         q.Get("limit"),
			"before":        q.Get("before"),
		}
		_ = json.NewEncoder(w).Encode([]CommentAction{})
	}))
	defer server.Close()

	client := NewRESTClient(server.URL, "k", "t")

	// First page: no cursor.
	if _, err := client.ListMemberComments(context.Background(), "john_smith", CommentQuery{BoardID: "board1"}); err != nil {
		t.Fatalf("ListMemberComments returned error: %v", err)
	}
	want := map[string]string{
		"filter":        "commentCard",
		"memberCreator": "true",
		"board":         "true",
		"idBoard":       "board1",
		"limit":         "1000",
		"before":        "",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("param %s = %q, want %q", k, got[k], v)
		}
	}

	// Later page: cursor present, custom limit.
	if _, err := client.ListMemberComments(context.Background(), "john_smith", CommentQuery{
		BoardID: "board1",
		Limit:   250,
		Before:  "2024-05-01T12:00:00.000Z",
	}); err != nil {
		t.Fatalf("ListMemberComments returned error: %v", err)
	}
	if got["before"] != "2024-05-01T12:00:00.000Z" {
		t.Errorf("before param = %q, want the cursor date", got["before"])
	}
	if got["limit"] != "250" {
		t.Errorf("limit param = %q, want 250", got["limit"])
	}
}

func TestNonSuccessStatus(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{status: 401, sentinel: trelloerrors.ErrInvalidCredentials},
		{status: 404, sentinel: trelloerrors.ErrNotFound},
		{status: 429, sentinel: trelloerrors.ErrRateLimit},
		{status: 500, sentinel: nil},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		client := NewRESTClient(server.URL, "k", "t")
		_, err := client.GetBoard(context.Background(), "abc")
		if err == nil {
			t.Errorf("status %d: expected error, got nil", tt.status)
			server.Close()
			continue
		}

		var reqErr *trelloerrors.RequestError
		if !errors.As(err, &reqErr) {
			t.Errorf("status %d: error %v does not carry a RequestError", tt.status, err)
		} else if reqErr.StatusCode != tt.status {
			t.Errorf("status %d: RequestError.StatusCode = %d", tt.status, reqErr.StatusCode)
		}

		if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
			t.Errorf("status %d: error %v does not match sentinel %v", tt.status, err, tt.sentinel)
		}
		server.Close()
	}
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // Connections to the dead address are refused.

	client := NewRESTClient(url, "k", "t")
	_, err := client.GetBoard(context.Background(), "abc")
	if !errors.Is(err, trelloerrors.ErrNetworkFailure) {
		t.Errorf("error = %v, want ErrNetworkFailure in chain", err)
	}
}

func TestMalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewRESTClient(server.URL, "k", "t")
	if _, err := client.GetBoard(context.Background(), "abc"); err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestDefaultBaseURL(t *testing.T) {
	client := NewRESTClient("", "k", "t")
	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
}
