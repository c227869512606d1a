package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-layout-engine/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the layout engine over REST: POST /layout, POST /layout/batch and GET /health.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := servePort

	// PORT env var wins over the flag default, matching container conventions
	if env := os.Getenv("PORT"); env != "" && !cmd.Flags().Changed("port") {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}

	srv := server.New(server.Config{Port: port})
	return srv.Start()
}
