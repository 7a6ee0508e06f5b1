package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jstucken/trello-export/internal/trello"
)

// CommentWriter accumulates comment actions and writes them to a single
// JSON-array file on Close. The final file name depends on the record count,
// so nothing is written until Close.
type CommentWriter struct {
	mu       sync.Mutex
	dir      string
	username string
	comments []trello.CommentAction
	path     string
	closed   bool
}

// NewCommentWriter creates a writer that will persist into dir using the
// {username}_comments_{count}.json naming convention.
func NewCommentWriter(dir, username string) *CommentWriter {
	return &CommentWriter{
		dir:      dir,
		username: username,
		comments: make([]trello.CommentAction, 0),
	}
}

// Write buffers a single comment action.
func (w *CommentWriter) Write(c trello.CommentAction) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("write after close")
	}
	w.comments = append(w.comments, c)
	return nil
}

// WriteAll buffers a batch of comment actions in order.
func (w *CommentWriter) WriteAll(cs []trello.CommentAction) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("write after close")
	}
	w.comments = append(w.comments, cs...)
	return nil
}

// Count returns the number of records buffered so far.
func (w *CommentWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.comments)
}

// Close serializes the buffered records as a JSON array and writes the
// export file atomically using a write-to-temp-and-rename pattern.
func (w *CommentWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	data, err := json.Marshal(w.comments)
	if err != nil {
		return fmt.Errorf("failed to marshal comments: %w", err)
	}

	path := filepath.Join(w.dir, CommentFileName(w.username, len(w.comments)))
	tmpFile := path + ".tmp"

	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary export file: %w", err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename export file: %w", err)
	}

	w.path = path
	w.closed = true
	return nil
}

// Path returns the final export file path. Empty until Close has succeeded.
func (w *CommentWriter) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// CommentFileName returns the conventional export file name for a user's
// comment archive.
func CommentFileName(username string, count int) string {
	return fmt.Sprintf("%s_comments_%d.json", username, count)
}
