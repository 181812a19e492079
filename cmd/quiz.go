package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/genai-course/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <chapter>",
	Short: "Answer a chapter quiz on the command line",
	Long: `Answer a chapter's quiz by typing the option number.

A correct answer marks the chapter complete. Only some chapters have a quiz.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closeEnv(e)

		a, ok := e.quiz.Start(args[0])
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "No quiz for %s.\n", args[0])
			return nil
		}
		_, err = runQuiz(cmd.Context(), e.quiz, a, cmd.InOrStdin(), cmd.OutOrStdout())
		return err
	},
}

// runQuiz reads answers from in until the attempt is submitted or input ends.
func runQuiz(ctx context.Context, engine *quiz.Engine, a quiz.Attempt, in io.Reader, out io.Writer) (quiz.Attempt, error) {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, a.Def.Question)
	for i, opt := range a.Def.Options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
	}

	for !a.Submitted() {
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			return a, scanner.Err()
		}

		if text := strings.TrimSpace(scanner.Text()); text != "" {
			n, err := strconv.Atoi(text)
			if err != nil || n < 1 || n > len(a.Def.Options) {
				fmt.Fprintf(out, "Please enter a number from 1 to %d.\n", len(a.Def.Options))
				continue
			}
			a = engine.Select(a, n-1)
		}

		next, err := engine.Submit(ctx, a)
		if errors.Is(err, quiz.ErrNoSelection) {
			fmt.Fprintln(out, "Please select an answer first.")
			continue
		}
		if err != nil {
			return a, err
		}
		a = next
	}

	fb, _ := a.Feedback()
	if fb.Correct {
		fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m Chapter marked complete.")
	} else {
		fmt.Fprintf(out, "\033[31m✗ Not quite.\033[0m Answer: %s\n", fb.CorrectAnswer)
	}
	if fb.Explanation != "" {
		fmt.Fprintf(out, "Explanation: %s\n", fb.Explanation)
	}
	return a, nil
}
