package main

import (
	"fmt"

	"orderflow/cmd"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Scan the workflow graph once for steps without exactly one default transition",
	Long: `Runs the graph integrity scan a single time. Every step that holds active orders
but has zero or several default outgoing transitions is printed, and the command exits
with a non-zero status when any is found.`,
	RunE: func(c *cobra.Command, _ []string) error {
		ctx := c.Context()

		env, err := setup(ctx, c)
		if err != nil {
			return err
		}
		defer env.close()

		root, err := cmd.NewCompositionRoot(env.cfg, env.db, nil, env.logger)
		if err != nil {
			return err
		}

		violations, err := root.CreateGraphIntegrityJob().Run(ctx)
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		for _, v := range violations {
			fmt.Fprintf(out, "screen=%s step=%s (%s) default_transitions=%d active_orders=%d\n",
				v.ScreenID, v.StepID, v.StepName, v.DefaultTransitions, v.ActiveOrders)
		}
		if len(violations) > 0 {
			return fmt.Errorf("%d step(s) cannot route their orders", len(violations))
		}

		fmt.Fprintln(out, "workflow graph is consistent")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
