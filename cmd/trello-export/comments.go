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

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jstucken/trello-export/internal/config"
	"github.com/jstucken/trello-export/internal/metadata"
	"github.com/jstucken/trello-export/internal/output"
	"github.com/jstucken/trello-export/internal/trello"
	"github.com/jstucken/trello-export/pkg/version"
)

// commentsOptions carries the flag values of the comments command.
type commentsOptions struct {
	key           string
	token         string
	boardID       string
	configPath    string
	endpoint      string
	outputDir     string
	writeMetadata bool
}

func newCommentsCommand() *cobra.Command {
	var opts commentsOptions

	cmd := &cobra.Command{
		Use:   "comments <username>",
		Short: "Export all comments a user made on a Trello board",
		Long: `Export every comment the given user made on a Trello board.

Comments are fetched in pages of up to 1000 (the API maximum), walking
backward in time until a partial page signals the history is exhausted,
and saved as a single JSON array to {username}_comments_{count}.json in
descending date order. Nothing is written if any request fails.

The username can be found by opening the board in a browser, appending
.json to the URL, and searching for "username" in the response.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComments(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.key, "key", "", "Trello API key (overrides TRELLO_API_KEY env var)")
	cmd.Flags().StringVar(&opts.token, "token", "", "Trello API token (overrides TRELLO_API_TOKEN env var)")
	cmd.Flags().StringVar(&opts.boardID, "board", "", "Trello board id (overrides TRELLO_BOARD_ID env var)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "Trello API endpoint (default: https://api.trello.com)")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "Directory for the export file (default: current directory)")
	cmd.Flags().BoolVar(&opts.writeMetadata, "metadata", false, "Also write an export metadata sidecar file")

	return cmd
}

// runComments executes the comments command
func runComments(ctx context.Context, username string, opts commentsOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.endpoint != "" {
		cfg.Trello.APIEndpoint = opts.endpoint
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	creds, err := config.ResolveCredentials(cfg, opts.key, opts.token)
	if err != nil {
		return err
	}
	boardID, err := config.ResolveBoardID(cfg, opts.boardID)
	if err != nil {
		return err
	}

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = cfg.Defaults.OutputDir
	}

	client := trello.NewRESTClient(cfg.Trello.APIEndpoint, creds.Key, creds.Token)

	return exportComments(ctx, client, exportParams{
		username:      username,
		boardID:       boardID,
		pageSize:      cfg.Defaults.PageSize,
		outputDir:     outputDir,
		writeMetadata: opts.writeMetadata,
		toolVersion:   version.Version,
	})
}

// exportParams carries the resolved inputs of a single export run.
type exportParams struct {
	username      string
	boardID       string
	pageSize      int
	outputDir     string
	writeMetadata bool
	toolVersion   string
}

// exportComments fetches the complete comment history and persists it.
// Split from runComments so it can be exercised with a mock client.
func exportComments(ctx context.Context, client trello.Client, p exportParams) error {
	pageSize := p.pageSize
	if pageSize <= 0 || pageSize > trello.MaxCommentPageSize {
		pageSize = trello.MaxCommentPageSize
	}

	tracker := metadata.New()

	fmt.Fprintf(os.Stderr, "Fetching comments by %s...", p.username)
	comments, err := trello.FetchAllComments(ctx, client, p.username, p.boardID, trello.CommentFetchOptions{
		PageSize: pageSize,
		OnPage: func(page, total int) {
			tracker.IncrementAPICall()
			fmt.Fprintf(os.Stderr, "\rFetching comments by %s... page %d, %d comments", p.username, page, total)
		},
	})
	fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
	if err != nil {
		return err
	}

	for _, c := range comments {
		tracker.RecordComment(c.Date)
	}

	writer := output.NewCommentWriter(p.outputDir, p.username)
	if err := writer.WriteAll(comments); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%d Trello comments found for %s on board %s\n", len(comments), p.username, p.boardID)
	fmt.Fprintf(os.Stderr, "Saved %s\n", writer.Path())

	if p.writeMetadata {
		meta := tracker.GenerateMetadata(p.toolVersion, metadata.ExportParams{
			Username: p.username,
			BoardID:  p.boardID,
			PageSize: pageSize,
		})
		metaPath := metadataPath(writer.Path())
		if err := metadata.SaveMetadata(meta, metaPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %s\n", metaPath)
	}

	return nil
}

// metadataPath derives the sidecar file name from the export file name.
func metadataPath(exportPath string) string {
	return strings.TrimSuffix(exportPath, ".json") + ".meta.json"
}
