package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rudresh.dev/internal/config"
	"rudresh.dev/internal/handlers"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio HTTP server",
	Long: `Serves the portfolio page, its HTML fragments and the JSON API.

When a config file is in use it is watched. Edits to the typewriter
phrases and intervals restart live typewriter streams; usernames and
upstream settings apply to the next request. The listen address is
read once at startup.

PORT supplies ":<port>" as the listen address unless SERVER_ADDR is set.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ServerAddr = serveAddr
	}

	store := config.NewStore(cfg)
	if path != "" {
		if err := config.Watch(ctx, config.NewLoader(), path, store, logger); err != nil {
			logger.Warn("Config hot reload disabled", zap.Error(err))
		}
	}

	srv := newServer(cfg.ServerAddr, handlers.SetupRoutes(store, logger))

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", cfg.ServerAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// newServer builds the HTTP server. Request contexts derive from a base
// context cancelled when Shutdown starts, so long-lived streams end
// instead of holding shutdown open.
func newServer(addr string, handler http.Handler) *http.Server {
	base, cancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
	srv.RegisterOnShutdown(cancel)
	return srv
}
