package cli

import (
	"flag"
	"fmt"
	"io"

	"quizpage/internal/bank"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		bankPath := flags.String("bank", "", "Path to bank file (default: search for .quizpage/bank.yml, then built-in)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		resolved, err := resolveBankPath(*bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		b, err := bank.Resolve(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		source := resolved
		if source == "" {
			source = "built-in"
		}
		fmt.Fprintf(stdout, "Bank OK (%d questions, %s)\n", b.Len(), source)
		return ExitOK
	}
}
