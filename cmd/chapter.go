package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chapterCmd = &cobra.Command{
	Use:   "chapter",
	Short: "Browse course chapters",
}

var chapterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all chapters",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closeEnv(e)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-6s %-34s %s\n", "ID", "TITLE", "QUIZ")
		for _, ch := range e.catalog.Chapters() {
			q := ""
			if e.quiz.Has(ch.ID) {
				q = "yes"
			}
			fmt.Fprintf(out, "%-6s %-34s %s\n", ch.ID, ch.Title, q)
		}
		return nil
	},
}

var chapterShowCmd = &cobra.Command{
	Use:   "show <chapter>",
	Short: "Print a chapter's text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closeEnv(e)

		ch, ok := e.content.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown chapter %q", args[0])
		}

		deep, _ := cmd.Flags().GetBool("deep")
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  %s\n", ch.ID, ch.Title)
		if ch.Summary != "" {
			fmt.Fprintln(out, ch.Summary)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.TrimSpace(ch.Body))
		if deep && ch.DeepDive != "" {
			fmt.Fprintln(out, "\n── Deep dive ──")
			fmt.Fprintln(out, strings.TrimSpace(ch.DeepDive))
			// Reading the deep dive counts as completing the chapter.
			e.progress.MarkCompleted(cmd.Context(), ch.ID)
		}
		return nil
	},
}

func init() {
	chapterShowCmd.Flags().Bool("deep", false, "Also print the deep dive (marks the chapter complete)")

	chapterCmd.AddCommand(chapterListCmd)
	chapterCmd.AddCommand(chapterShowCmd)
}
