package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderflow/cmd"
	httpadapter "orderflow/internal/adapters/in/http"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the scheduled jobs",
	RunE: func(c *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		env, err := setup(ctx, c)
		if err != nil {
			return err
		}
		defer env.close()

		cache := cmd.OpenGraphCache(ctx, env.cfg, env.logger)
		if cache != nil {
			defer func() { _ = cache.Close() }()
		}

		root, err := cmd.NewCompositionRoot(env.cfg, env.db, cache, env.logger)
		if err != nil {
			return err
		}

		jobManager := root.CreateJobManager()
		if err = jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()

		e, err := httpadapter.NewEcho(root.CreateHTTPServer())
		if err != nil {
			return err
		}
		addr := net.JoinHostPort("0.0.0.0", env.cfg.HTTPPort)

		serverErrors := make(chan error, 1)
		go func() {
			env.logger.InfoContext(ctx, "Starting HTTP server", "addr", addr)
			serverErrors <- e.Start(addr)
		}()

		select {
		case err = <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
			env.logger.Info("Shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err = e.Shutdown(shutdownCtx); err != nil {
			env.logger.Error("Graceful shutdown did not complete", "error", err)
			return e.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
