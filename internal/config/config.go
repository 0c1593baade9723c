// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Persistence
	StatePath   string `json:"state_path,omitempty"`   // Directory for the file-backed state store
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; wins over StatePath when set

	// Extraction
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key; env GEMINI_API_KEY wins
	GeminiModel string `json:"gemini_model,omitempty"` // Gemini model name
	MockExtract bool   `json:"mock_extract,omitempty"` // Use fixture extraction instead of the model

	// Upload limits
	MaxFileSizeMB    int `json:"max_file_size_mb,omitempty"`
	MaxFilesPerBatch int `json:"max_files_per_batch,omitempty"`

	// Behavior
	Port       int  `json:"port,omitempty"`        // HTTP listen port
	DebounceMS int  `json:"debounce_ms,omitempty"` // Persistence debounce window
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxFileSizeMB < 0 {
		return fmt.Errorf("config error: 'max_file_size_mb' must be non-negative")
	}
	if c.MaxFilesPerBatch < 0 {
		return fmt.Errorf("config error: 'max_files_per_batch' must be non-negative")
	}
	if c.DebounceMS < 0 {
		return fmt.Errorf("config error: 'debounce_ms' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.StatePath == "" {
		result.StatePath = defaults.StatePath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}

	// Int fields: use default if zero
	if result.MaxFileSizeMB == 0 {
		result.MaxFileSizeMB = defaults.MaxFileSizeMB
	}
	if result.MaxFilesPerBatch == 0 {
		result.MaxFilesPerBatch = defaults.MaxFilesPerBatch
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DebounceMS == 0 {
		result.DebounceMS = defaults.DebounceMS
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
