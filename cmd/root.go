package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "genai-course",
	Short: "Terminal reader for the generative AI course",
	Long: `genai-course is a terminal reader for an eleven-chapter generative AI course.
It tracks which chapters you have completed, quizzes you on key chapters and
includes a prompt builder and a scripted chat demo.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./config.yaml or $XDG_CONFIG_HOME/genai-course/config.yaml)")
	rootCmd.PersistentFlags().String("backend", "", "Progress storage backend: sqlite, redis or memory (overrides config)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides config and GENAI_COURSE_DB)")
	rootCmd.Flags().String("chapter", "", "Chapter to open at, e.g. ch05")

	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(chapterCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
