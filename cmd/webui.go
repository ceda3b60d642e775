package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	appconfig "github.com/ca-srg/brandrank/internal/config"
	"github.com/ca-srg/brandrank/internal/observability"
	"github.com/ca-srg/brandrank/internal/webui"
)

var (
	webuiHost string
	webuiPort int
)

var webuiCmd = &cobra.Command{
	Use:   "webui",
	Short: "Start the Web UI for running ranking checks in the browser",
	Long: `
The webui command starts a local web server with a form for the API key,
brand name, and keyword. Submitting the form runs a check and renders the
ranked list with the match highlighted, plus a session history and a CSV
download of the last results.

The API key entered in the form is kept in memory for the session only.

Example:
  brandrank webui                  # Start with defaults (localhost:8081)
  brandrank webui --port 8080      # Use custom port
`,
	RunE: runWebUI,
}

func init() {
	webuiCmd.Flags().StringVar(&webuiHost, "host", "", "Host to bind the web server (defaults to config)")
	webuiCmd.Flags().IntVarP(&webuiPort, "port", "p", 0, "Port to bind the web server (defaults to config)")
}

func runWebUI(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	shutdown, err := observability.Init(cfg)
	if err != nil {
		log.Printf("Warning: observability init failed: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if webuiHost != "" {
		cfg.WebUIHost = webuiHost
	}
	if webuiPort != 0 {
		cfg.WebUIPort = webuiPort
	}

	serverConfig := &webui.ServerConfig{
		Host:            cfg.WebUIHost,
		Port:            cfg.WebUIPort,
		ReadTimeout:     cfg.WebUIReadTimeout,
		WriteTimeout:    cfg.WebUIWriteTimeout,
		IdleTimeout:     cfg.WebUIIdleTimeout,
		ShutdownTimeout: cfg.WebUIShutdownTimeout,
	}

	logger := log.New(os.Stdout, "[webui] ", log.LstdFlags)

	server, err := webui.NewServer(serverConfig, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create webui server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx)
}
