package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-search-agent/internal/config"
	"github.com/jonathan/job-search-agent/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server exposing POST /search-jobs, /find-hiring-manager and /draft-outreach
(also under /api/) plus GET /health. The API key is read from the environment on every request.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or PORT, else 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	port := settings.Port
	if servePort != 0 {
		port = servePort
	}

	if _, ok := config.LookupAPIKey(settings.Provider); !ok {
		logger.Warnf("%s is not set; requests will fail until it is configured", config.APIKeyEnv(settings.Provider))
	}

	srv, err := server.New(server.Config{
		Port:      port,
		Assistant: newService(),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
