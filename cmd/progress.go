package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/genai-course/internal/nav"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show chapter completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closeEnv(e)

		v := nav.NewPresenter().Render(e.progress.All(cmd.Context()), e.catalog)
		printProgress(cmd.OutOrStdout(), v)
		return nil
	},
}

const barWidth = 30

func printProgress(w io.Writer, v nav.View) {
	filled := barWidth * v.Percent / 100
	fmt.Fprintf(w, "Progress: %s (%d%%)\n", v.Text, v.Percent)
	fmt.Fprintf(w, "[%s%s]\n\n", strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled))
	for _, e := range v.Entries {
		mark := "○"
		if e.Completed {
			mark = "✓"
		}
		fmt.Fprintf(w, "  %s %s  %s\n", mark, e.ChapterID, e.Title)
	}
}
