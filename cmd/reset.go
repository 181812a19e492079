package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all course progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Fprintln(cmd.OutOrStdout(), "This clears all completed chapters. Re-run with --yes to confirm.")
			return nil
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closeEnv(e)

		if e.kv == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Storage is unavailable, nothing to clear.")
			return nil
		}
		if err := e.kv.Clear(cmd.Context(), e.cfg.Storage.Key); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm clearing progress")
}
