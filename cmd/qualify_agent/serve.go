package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ae-qualify/internal/autofill"
	"github.com/jonathan/ae-qualify/internal/export"
	"github.com/jonathan/ae-qualify/internal/server"
)

var (
	servePort int
	serveMock bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for the browser dashboard: projects, uploads, form patches, progress reports, and PDF export.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().BoolVar(&serveMock, "mock", false, "Use fixture extraction instead of Gemini")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := context.Background()

	st, _, cleanup, err := openState(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	extractor, err := buildExtractor(ctx, cfg, serveMock || cfg.MockExtract)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}
	defer extractor.Close()

	srv := server.New(server.Config{
		Port:             cfg.Port,
		MaxFileSizeMB:    cfg.MaxFileSizeMB,
		MaxFilesPerBatch: cfg.MaxFilesPerBatch,
		PDFTimeout:       export.DefaultPrintTimeout,
		Verbose:          cfg.Verbose,
	}, st, autofill.New(st, extractor))

	return srv.Start()
}
