package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <chapter>",
	Short: "Mark a chapter complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closeEnv(e)

		id := args[0]
		if !e.catalog.Has(id) {
			return fmt.Errorf("unknown chapter %q", id)
		}

		ctx := cmd.Context()
		e.progress.MarkCompleted(ctx, id)
		fmt.Fprintf(cmd.OutOrStdout(), "Marked %s complete (%d/%d)\n",
			id, e.progress.CompletedCount(ctx), e.catalog.Len())
		return nil
	},
}
