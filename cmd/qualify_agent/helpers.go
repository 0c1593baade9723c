package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jonathan/ae-qualify/internal/config"
	"github.com/jonathan/ae-qualify/internal/extraction"
	"github.com/jonathan/ae-qualify/internal/persist"
	"github.com/jonathan/ae-qualify/internal/store"
)

var (
	configPath string
	statePath  string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Directory for the file-backed state store")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func defaultConfig() config.Config {
	return config.Config{
		StatePath:        ".qualify",
		GeminiModel:      extraction.DefaultGeminiModel,
		MaxFileSizeMB:    10,
		MaxFilesPerBatch: 10,
		Port:             8080,
		DebounceMS:       500,
	}
}

// resolveConfig merges flags, the optional config file, environment secrets,
// and defaults, in that order of precedence.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if statePath != "" {
		cfg.StatePath = statePath
	}
	if verbose {
		cfg.Verbose = true
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}

	cfg = cfg.MergeWithDefaults(defaultConfig())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openState loads the persisted state into a store and attaches the
// debounced writer. The returned cleanup flushes and closes everything.
func openState(ctx context.Context, cfg config.Config) (*store.Store, *persist.Writer, func(), error) {
	var kv persist.KV
	if cfg.DatabaseURL != "" {
		pg, err := persist.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		kv = pg
	} else {
		fileKV, err := persist.NewFileKV(cfg.StatePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open state directory: %w", err)
		}
		kv = fileKV
	}

	st := store.New(persist.Load(ctx, kv))

	writer := persist.NewWriter(kv, st, time.Duration(cfg.DebounceMS)*time.Millisecond)
	writer.Attach()

	cleanup := func() {
		writer.Close()
		st.Close()
		if err := kv.Close(); err != nil {
			log.Printf("[PERSIST] Close failed: %v", err)
		}
	}
	return st, writer, cleanup, nil
}

// buildExtractor returns the Gemini extractor, or the fixture extractor when
// mock mode is requested.
func buildExtractor(ctx context.Context, cfg config.Config, mock bool) (extraction.Extractor, error) {
	if mock {
		return extraction.NewMockExtractor(), nil
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required (or pass --mock)")
	}
	return extraction.NewGeminiExtractor(ctx, cfg.APIKey, cfg.GeminiModel)
}
