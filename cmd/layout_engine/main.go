// Package main provides the entry point for the CV layout engine CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "layout_engine",
	Short: "CV layout optimization engine",
	Long:  "Computes page-by-page placements of CV content blocks that respect page size, margins, section priority and page count, producing a quality score and recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
