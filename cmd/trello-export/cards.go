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
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jstucken/trello-export/internal/config"
	"github.com/jstucken/trello-export/internal/output"
	"github.com/jstucken/trello-export/internal/trello"
)

// cardsOptions carries the flag values of the cards command.
type cardsOptions struct {
	key        string
	token      string
	boardID    string
	configPath string
	endpoint   string
}

func newCardsCommand() *cobra.Command {
	var opts cardsOptions

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List the cards on a Trello board",
		Long: `List every card on a Trello board as a table: row number, card name,
creation date, last-activity date, and URL.

The creation date is not stored by Trello; it is derived from the card id,
whose first 8 characters encode the creation time as a hexadecimal Unix
timestamp.

Credentials are required via Trello API key and token:
  - Use --key / --token flags to provide them directly
  - Or set TRELLO_API_KEY and TRELLO_API_TOKEN environment variables
  - Or configure a dotenv credentials file in the config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			return runCards(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.key, "key", "", "Trello API key (overrides TRELLO_API_KEY env var)")
	cmd.Flags().StringVar(&opts.token, "token", "", "Trello API token (overrides TRELLO_API_TOKEN env var)")
	cmd.Flags().StringVar(&opts.boardID, "board", "", "Trello board id (overrides TRELLO_BOARD_ID env var)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "Trello API endpoint (default: https://api.trello.com)")

	return cmd
}

// runCards executes the cards command
func runCards(ctx context.Context, opts cardsOptions) error {
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

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	client := trello.NewRESTClient(cfg.Trello.APIEndpoint, creds.Key, creds.Token)

	return listCards(ctx, client, boardID, logger, os.Stdout)
}

// listCards fetches the board and its cards and renders the table.
// Split from runCards so it can be exercised with a mock client.
func listCards(ctx context.Context, client trello.Client, boardID string, logger *zap.Logger, w io.Writer) error {
	logger.Info("fetching board", zap.String("board_id", boardID))

	board, err := client.GetBoard(ctx, boardID)
	if err != nil {
		return err
	}

	cards, err := client.ListCards(ctx, boardID)
	if err != nil {
		return err
	}

	logger.Info("board fetched",
		zap.String("name", board.Name),
		zap.String("url", board.URL),
		zap.Int("cards", len(cards)),
	)

	return output.RenderCardTable(w, cards)
}
