package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arbor-ui/arbor/internal/config"
	"github.com/arbor-ui/arbor/pkg/devserver"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the development server",
		Long: `Start the development server with live reload.

The server serves the configured static directory, watches for
file changes, and automatically refreshes connected browsers.

Examples:
  arbor serve
  arbor serve --port=8080
  arbor serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from arbor.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from arbor.json)")

	return cmd
}

func runServe(port int, host string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	// Command-line overrides
	if port > 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}

	printBanner()
	fmt.Println("  serve")
	fmt.Println()
	info("Serving %s at %s", cfg.StaticDir(), cfg.DevURL())
	if cfg.Dev.LiveReload {
		info("Live reload enabled")
	}
	fmt.Println()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	server := devserver.NewServer(devserver.Options{
		Config: cfg,
		Logger: log,
		OnReload: func(clients int) {
			info("Reloaded %d browser(s)", clients)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Start(ctx)
}
