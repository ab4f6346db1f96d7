package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"orderflow/cmd"
	"orderflow/internal/pkg/logging"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:           "orderflow",
	Short:         "Workflow routing and order approval service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command selected on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "File with environment variables to load")
}

// environment is what every subcommand needs: validated configuration, a logger and the database.
type environment struct {
	cfg    cmd.Config
	logger *slog.Logger
	db     *gorm.DB
}

func setup(ctx context.Context, c *cobra.Command) (*environment, error) {
	envFile, _ := c.Flags().GetString("env-file")

	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(level)

	db, err := cmd.OpenDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &environment{cfg: cfg, logger: logger, db: db}, nil
}

func (e *environment) close() {
	if err := cmd.CloseDatabase(e.db); err != nil {
		e.logger.Error("Failed to close database", "error", err)
	}
}
