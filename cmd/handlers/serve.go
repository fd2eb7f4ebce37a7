package handlers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"kingdom/internal/logger"
	"kingdom/internal/server"
)

const shutdownTimeout = 15 * time.Second

// NewServeCmd creates the serve command for starting the HTTP server
func NewServeCmd() *cobra.Command {
	var (
		port    int
		host    string
		noStore bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Long: `Start the kingdom HTTP API.

The server provides:
  • Hashtag, content idea, strategy and scoring endpoints under /api
  • A/B test tracking under /api/abtests
  • Hashtag history under /api/history/{user} (backed by SQLite)
  • /health and Prometheus /metrics

Examples:
  # Start server on default port 8080
  kingdom serve

  # Start on custom port without the history store
  kingdom serve --port 3000 --no-store`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port, host, !noStore)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP server port (default from config: 8080)")
	cmd.Flags().StringVar(&host, "host", "", "HTTP server host (default from config: 0.0.0.0)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "run without the SQLite history store")

	return cmd
}

func runServe(ctx context.Context, port int, host string, withStore bool) error {
	a, err := newApp(ctx, "", withStore)
	if err != nil {
		return err
	}
	defer a.Close()

	serverCfg := a.cfg.Server
	if port != 0 {
		serverCfg.Port = port
	}
	if host != "" {
		serverCfg.Host = host
	}

	srv := server.New(server.Deps{
		Hashtags:     a.hashtags,
		Strategy:     a.composer,
		Intelligence: a.intelligence,
		Store:        a.store,
		Recorder:     a.recorder,
		Mode:         a.mode,
	}, serverCfg)

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info(fmt.Sprintf("Server listening on http://%s", serverCfg.Addr()))
		logger.Info("Press Ctrl+C to stop")
		serverErrors <- srv.Start()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-shutdown:
		logger.Info("Server shutdown initiated", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed, forcing close", err)
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info("Server stopped successfully")
	}

	return nil
}
