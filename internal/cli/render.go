package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"quizpage/internal/render"
	"quizpage/internal/session"
)

// runRender builds the handler for the render command.
func runRender(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		bankPath := flags.String("bank", "", "Path to bank file (default: search for .quizpage/bank.yml, then built-in)")
		answersPath := flags.String("answers", "", "Answers file preselecting options")
		graded := flags.Bool("graded", false, "Render the page with feedback and score")
		outPath := flags.String("out", "", "Output file (default: stdout)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		b, err := loadBank(*bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "Render failed: %v\n", err)
			return ExitError
		}
		state, err := sessionFromAnswers(b, strings.TrimSpace(*answersPath))
		if err != nil {
			fmt.Fprintf(stderr, "Render failed: %v\n", err)
			return ExitError
		}
		if *graded {
			state, _ = session.Grade(b, state)
		}
		page := render.Page(render.Build(b, state))

		target := strings.TrimSpace(*outPath)
		if target == "" {
			if err := page.Render(context.Background(), stdout); err != nil {
				fmt.Fprintf(stderr, "Render failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		file, err := os.Create(target)
		if err != nil {
			fmt.Fprintf(stderr, "Render failed: %v\n", err)
			return ExitError
		}
		renderErr := page.Render(context.Background(), file)
		closeErr := file.Close()
		if renderErr != nil || closeErr != nil {
			if renderErr == nil {
				renderErr = closeErr
			}
			fmt.Fprintf(stderr, "Render failed: write %s: %v\n", target, renderErr)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", target)
		return ExitOK
	}
}
