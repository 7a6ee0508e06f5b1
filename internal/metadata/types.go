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

// Package metadata types define the structures used for recording what an
// export run did: its parameters, counts, and date range.
package metadata

import "time"

// ExportMetadata is the complete audit record for a single comment export
// run. It is written as a sidecar JSON file next to the export itself so the
// export can be traced back to the parameters and API usage that produced it.
type ExportMetadata struct {
	ToolVersion string        `json:"tool_version"`
	ExportID    string        `json:"export_id"`
	Parameters  ExportParams  `json:"parameters"`
	Results     ExportResults `json:"results"`
}

// ExportParams captures the input parameters used for an export run.
type ExportParams struct {
	Username string `json:"username"`
	BoardID  string `json:"board_id"`
	PageSize int    `json:"page_size"`
}

// ExportResults contains the statistics of a completed export run. Comment
// dates are the API's own strings, matching how they appear in the export
// file itself.
type ExportResults struct {
	TotalComments int       `json:"total_comments"`
	NewestComment string    `json:"newest_comment_date,omitempty"`
	OldestComment string    `json:"oldest_comment_date,omitempty"`
	APICallCount  int       `json:"api_calls_made"`
	Duration      string    `json:"export_duration"`
	StartedAt     time.Time `json:"started_at"`
	CompletedAt   time.Time `json:"completed_at"`
}
