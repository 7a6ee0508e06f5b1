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

// Package config provides configuration management for trello-export with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// Credentials follow the same idea but add a dotenv-style credentials file:
// if one is configured and exists, it is loaded into the process environment
// (without overriding variables that are already set) before the credential
// variables are read.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	trelloerrors "github.com/jstucken/trello-export/internal/errors"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .trello-export.yaml (current directory)
//   - .trello-export.yml (current directory)
//   - ~/.trello-export/config.yaml
//   - ~/.trello-export/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides. Returns an error if the specified config file cannot be
// loaded, but succeeds with defaults if no config file is found in standard
// locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".trello-export.yaml",
			".trello-export.yml",
			filepath.Join(os.Getenv("HOME"), ".trello-export", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".trello-export", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	cfg.Defaults.OutputDir = expandPath(cfg.Defaults.OutputDir)
	cfg.Trello.CredentialsFile = expandPath(cfg.Trello.CredentialsFile)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("TRELLO_API_ENDPOINT"); endpoint != "" {
		cfg.Trello.APIEndpoint = endpoint
	}
	if credsFile := os.Getenv("TRELLO_CREDENTIALS_FILE"); credsFile != "" {
		cfg.Trello.CredentialsFile = credsFile
	}
	if pageSize := os.Getenv("TRELLO_EXPORT_PAGE_SIZE"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil && size > 0 {
			cfg.Defaults.PageSize = size
		}
	}
	if outputDir := os.Getenv("TRELLO_EXPORT_OUTPUT_DIR"); outputDir != "" {
		cfg.Defaults.OutputDir = outputDir
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// Validate checks if the configuration contains valid values. This should be
// called after loading configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Trello.APIEndpoint == "" {
		return fmt.Errorf("trello API endpoint cannot be empty")
	}
	if c.Defaults.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got: %d", c.Defaults.PageSize)
	}
	if c.Defaults.PageSize > 1000 {
		return fmt.Errorf("page size %d exceeds the Trello API limit of 1000", c.Defaults.PageSize)
	}
	return nil
}

// ResolveCredentials produces the API credential pair, applying the
// precedence flag > environment variable. If a credentials file is
// configured and exists, it is loaded into the environment first, mirroring
// how the tool is run from cron with credentials kept in a root-only file.
//
// A missing key or token is a fatal configuration error carrying
// ErrMissingConfig.
func ResolveCredentials(cfg *Config, flagKey, flagToken string) (Credentials, error) {
	loadCredentialsFile(cfg)

	key := flagKey
	if key == "" {
		key = os.Getenv(cfg.Trello.KeyEnv)
	}
	if key == "" {
		return Credentials{}, fmt.Errorf("trello API key not set. Use --key or set %s: %w",
			cfg.Trello.KeyEnv, trelloerrors.ErrMissingConfig)
	}

	token := flagToken
	if token == "" {
		token = os.Getenv(cfg.Trello.TokenEnv)
	}
	if token == "" {
		return Credentials{}, fmt.Errorf("trello API token not set. Use --token or set %s: %w",
			cfg.Trello.TokenEnv, trelloerrors.ErrMissingConfig)
	}

	return Credentials{Key: key, Token: token}, nil
}

// ResolveBoardID produces the target board id with the same flag > env
// precedence as credentials.
func ResolveBoardID(cfg *Config, flagBoard string) (string, error) {
	if flagBoard != "" {
		return flagBoard, nil
	}
	loadCredentialsFile(cfg)
	if boardID := os.Getenv(cfg.Trello.BoardEnv); boardID != "" {
		return boardID, nil
	}
	return "", fmt.Errorf("trello board id not set. Use --board or set %s: %w",
		cfg.Trello.BoardEnv, trelloerrors.ErrMissingConfig)
}

// loadCredentialsFile loads the configured dotenv credentials file into the
// process environment. Variables already set in the environment win; a
// missing file is not an error so the env-only workflow keeps working.
func loadCredentialsFile(cfg *Config) {
	if cfg.Trello.CredentialsFile == "" {
		return
	}
	if _, err := os.Stat(cfg.Trello.CredentialsFile); err != nil {
		return
	}
	_ = godotenv.Load(cfg.Trello.CredentialsFile)
}
