package main

import (
	"orderflow/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(c *cobra.Command, _ []string) error {
		ctx := c.Context()

		env, err := setup(ctx, c)
		if err != nil {
			return err
		}
		defer env.close()

		if err = postgres.Migrate(ctx, env.db); err != nil {
			return err
		}
		env.logger.InfoContext(ctx, "Schema migrated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
