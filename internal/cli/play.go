package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"quizpage/internal/render"
	"quizpage/internal/ui/live"
	"quizpage/internal/ui/plain"
)

var (
	runLive  = live.Run
	runPlain = plain.Run
)

// playInput allows tests to override stdin for play sessions.
var playInput io.Reader = os.Stdin

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		bankPath := flags.String("bank", "", "Path to bank file (default: search for .quizpage/bank.yml, then built-in)")
		uiMode := flags.String("ui", "auto", "UI mode: auto|live|plain")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		b, err := loadBank(*bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}

		in := playInput
		if in == nil {
			in = os.Stdin
		}
		if !decision.useLive {
			if _, err := runPlain(context.Background(), b, in, stdout, plain.Options{NoColor: *noColor}); err != nil {
				fmt.Fprintf(stderr, "Play failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		state, err := runLive(context.Background(), b, in, stdout, live.Options{NoColor: *noColor})
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		if summary := render.FormatSummary(render.Build(b, state).Summary, *noColor); summary != "" {
			fmt.Fprintln(stdout, summary)
		}
		return ExitOK
	}
}
