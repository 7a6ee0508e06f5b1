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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	trelloerrors "github.com/jstucken/trello-export/internal/errors"
	"github.com/jstucken/trello-export/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trello-export",
		Short: "Export card and comment data from Trello boards",
		Long: `trello-export reads board and card metadata plus user comment history
from the Trello API. Card listings are rendered as a table; comment
histories are exported as a single JSON file.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newCardsCommand())
	rootCmd.AddCommand(newCommentsCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, trelloerrors.ErrInvalidCredentials) ||
		errors.Is(err, trelloerrors.ErrNotFound) ||
		errors.Is(err, trelloerrors.ErrRateLimit) ||
		errors.Is(err, trelloerrors.ErrMissingConfig) {
		return 2 // Authentication/authorization/configuration errors
	}

	if errors.Is(err, trelloerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}

// newLogger builds the stderr diagnostics logger. Logging failures never
// block the actual work, so a no-op logger stands in if construction fails.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
