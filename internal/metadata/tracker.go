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

// Package metadata provides functionality for tracking and persisting
// metadata about export runs: API calls made, comment counts, and the date
// range covered. The record is saved as an indented JSON sidecar file so
// external tools can audit what an export contains without parsing it.
package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Tracker collects statistics during an export run and generates metadata.
// Create one at the start of the run and record activity as it happens.
type Tracker struct {
	startTime     time.Time
	apiCallCount  int
	totalComments int
	newest        string
	oldest        string
}

// New creates a new metadata tracker anchored at the current time.
func New() *Tracker {
	return &Tracker{startTime: time.Now()}
}

// IncrementAPICall records that an API call was made.
func (t *Tracker) IncrementAPICall() {
	t.apiCallCount++
}

// RecordComment updates the running statistics with one comment's date.
// Comments arrive newest first, so the first date seen is the newest and
// the latest date seen is the oldest.
func (t *Tracker) RecordComment(date string) {
	t.totalComments++
	if t.newest == "" {
		t.newest = date
	}
	t.oldest = date
}

// GenerateMetadata creates the export record. Call it after a successful
// run; the export id is a fresh UUID per run.
func (t *Tracker) GenerateMetadata(toolVersion string, params ExportParams) *ExportMetadata {
	completedAt := time.Now()

	return &ExportMetadata{
		ToolVersion: toolVersion,
		ExportID:    uuid.NewString(),
		Parameters:  params,
		Results: ExportResults{
			TotalComments: t.totalComments,
			NewestComment: t.newest,
			OldestComment: t.oldest,
			APICallCount:  t.apiCallCount,
			Duration:      completedAt.Sub(t.startTime).String(),
			StartedAt:     t.startTime,
			CompletedAt:   completedAt,
		},
	}
}

// SaveMetadata persists an export record to the given path as indented
// JSON. The file is written atomically using a temporary file and rename to
// prevent corruption.
func SaveMetadata(metadata *ExportMetadata, path string) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to save metadata file: %w", err)
	}

	return nil
}

// LoadMetadata reads an export record back from disk.
func LoadMetadata(path string) (*ExportMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file %s: %w", path, err)
	}

	var metadata ExportMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	return &metadata, nil
}
