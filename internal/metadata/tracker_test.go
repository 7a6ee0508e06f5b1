package metadata

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestTrackerStats(t *testing.T) {
	tracker := New()
	tracker.IncrementAPICall()
	tracker.IncrementAPICall()
	tracker.IncrementAPICall()

	// Newest first, the order the API returns comments in.
	tracker.RecordComment("2024-05-01T12:00:00.000Z")
	tracker.RecordComment("2024-04-30T09:30:00.000Z")
	tracker.RecordComment("2024-04-28T17:15:00.000Z")

	params := ExportParams{Username: "john_smith", BoardID: "board123", PageSize: 1000}
	meta := tracker.GenerateMetadata("v1.0.0", params)

	if meta.ToolVersion != "v1.0.0" {
		t.Errorf("ToolVersion = %q, want v1.0.0", meta.ToolVersion)
	}
	if meta.Parameters != params {
		t.Errorf("Parameters = %+v, want %+v", meta.Parameters, params)
	}
	if meta.Results.TotalComments != 3 {
		t.Errorf("TotalComments = %d, want 3", meta.Results.TotalComments)
	}
	if meta.Results.APICallCount != 3 {
		t.Errorf("APICallCount = %d, want 3", meta.Results.APICallCount)
	}
	if meta.Results.NewestComment != "2024-05-01T12:00:00.000Z" {
		t.Errorf("NewestComment = %q", meta.Results.NewestComment)
	}
	if meta.Results.OldestComment != "2024-04-28T17:15:00.000Z" {
		t.Errorf("OldestComment = %q", meta.Results.OldestComment)
	}
	if meta.Results.CompletedAt.Before(meta.Results.StartedAt) {
		t.Error("CompletedAt precedes StartedAt")
	}
}

func TestExportIDIsUnique(t *testing.T) {
	tracker := New()
	first := tracker.GenerateMetadata("dev", ExportParams{})
	second := tracker.GenerateMetadata("dev", ExportParams{})

	if _, err := uuid.Parse(first.ExportID); err != nil {
		t.Errorf("ExportID %q is not a valid UUID: %v", first.ExportID, err)
	}
	if first.ExportID == second.ExportID {
		t.Error("two runs produced the same ExportID")
	}
}

func TestSaveAndLoadMetadata(t *testing.T) {
	tracker := New()
	tracker.IncrementAPICall()
	tracker.RecordComment("2024-05-01T12:00:00.000Z")

	meta := tracker.GenerateMetadata("v1.0.0", ExportParams{Username: "john_smith", BoardID: "b", PageSize: 500})

	path := filepath.Join(t.TempDir(), "john_smith_comments_1.meta.json")
	if err := SaveMetadata(meta, path); err != nil {
		t.Fatalf("SaveMetadata returned error: %v", err)
	}

	loaded, err := LoadMetadata(path)
	if err != nil {
		t.Fatalf("LoadMetadata returned error: %v", err)
	}
	if loaded.ExportID != meta.ExportID {
		t.Errorf("loaded ExportID = %q, want %q", loaded.ExportID, meta.ExportID)
	}
	if loaded.Results.TotalComments != 1 {
		t.Errorf("loaded TotalComments = %d, want 1", loaded.Results.TotalComments)
	}
	if loaded.Parameters.PageSize != 500 {
		t.Errorf("loaded PageSize = %d, want 500", loaded.Parameters.PageSize)
	}
}

func TestLoadMetadataMissingFile(t *testing.T) {
	if _, err := LoadMetadata(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
