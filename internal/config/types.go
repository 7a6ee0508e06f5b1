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

// Package config types define the configuration structures used throughout
// trello-export. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for trello-export.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	Trello   TrelloConfig   `yaml:"trello"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// TrelloConfig contains Trello-specific settings: the API endpoint, the
// names of the environment variables credentials are read from, and an
// optional dotenv-style credentials file that is loaded into the process
// environment before those variables are read.
type TrelloConfig struct {
	APIEndpoint     string `yaml:"api_endpoint"`
	KeyEnv          string `yaml:"key_env"`
	TokenEnv        string `yaml:"token_env"`
	BoardEnv        string `yaml:"board_env"`
	CredentialsFile string `yaml:"credentials_file"`
}

// DefaultsConfig contains default settings that apply to all commands
// unless overridden by command-line flags.
type DefaultsConfig struct {
	PageSize  int    `yaml:"page_size"`
	OutputDir string `yaml:"output_dir"`
}

// Credentials is the explicit credential pair passed into flow entry points.
// Keeping it a plain struct keeps the flows testable without any
// process-environment coupling.
type Credentials struct {
	Key   string
	Token string
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases: the public Trello endpoint, the conventional credential
// variable names, and the API's maximum comment page size.
func DefaultConfig() *Config {
	return &Config{
		Trello: TrelloConfig{
			APIEndpoint: "https://api.trello.com",
			KeyEnv:      "TRELLO_API_KEY",
			TokenEnv:    "TRELLO_API_TOKEN",
			BoardEnv:    "TRELLO_BOARD_ID",
		},
		Defaults: DefaultsConfig{
			PageSize:  1000,
			OutputDir: ".",
		},
	}
}
