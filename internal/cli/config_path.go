package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quizpage/internal/bank"
	"quizpage/internal/config"
)

// resolveBankPath normalizes a bank path or finds it from CWD.
// An empty result selects the built-in bank.
func resolveBankPath(bankPath string) (string, error) {
	if strings.TrimSpace(bankPath) == "" {
		found, err := config.FindBankPath("")
		if errors.Is(err, config.ErrBankNotFound) {
			return "", nil
		}
		return found, err
	}
	abs, err := filepath.Abs(bankPath)
	if err != nil {
		return "", fmt.Errorf("resolve bank path: %w", err)
	}
	return abs, nil
}

// loadBank resolves and loads the bank selected by the --bank flag.
func loadBank(bankPath string) (*bank.Bank, error) {
	resolved, err := resolveBankPath(bankPath)
	if err != nil {
		return nil, err
	}
	return bank.Resolve(resolved)
}

// parseFlags parses command flags and reports the exit code to use when
// parsing did not succeed.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}
