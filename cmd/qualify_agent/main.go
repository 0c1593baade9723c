// Package main provides the entry point for the A/E qualification dashboard agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qualify_agent",
	Short: "Architect-Engineer qualification form agent",
	Long:  "qualify_agent manages SF330, SF254, SF255 and SF252 qualification form data: document ingestion with AI auto-fill, progress scoring, persistence, PDF export, and a REST API for the browser dashboard.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
