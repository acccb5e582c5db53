package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"quizpage/internal/grading"
	"quizpage/internal/render"
	"quizpage/internal/session"
)

// runGrade builds the handler for the grade command.
func runGrade(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		bankPath := flags.String("bank", "", "Path to bank file (default: search for .quizpage/bank.yml, then built-in)")
		answersPath := flags.String("answers", "", "Answers file mapping question ids to option keys")
		asJSON := flags.Bool("json", false, "Print the result as JSON")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		answers := strings.TrimSpace(*answersPath)
		if answers == "" {
			fmt.Fprintln(stderr, "--answers is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		b, err := loadBank(*bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "Grade failed: %v\n", err)
			return ExitError
		}
		state, err := sessionFromAnswers(b, answers)
		if err != nil {
			fmt.Fprintf(stderr, "Grade failed: %v\n", err)
			return ExitError
		}
		state, result := session.Grade(b, state)

		if *asJSON {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				fmt.Fprintf(stderr, "Grade failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintln(stdout, string(data))
			return ExitOK
		}
		printOutcomes(stdout, render.Build(b, state), result, *noColor)
		return ExitOK
	}
}

// printOutcomes writes one line per question followed by the summary.
func printOutcomes(w io.Writer, tree render.Tree, result grading.Result, noColor bool) {
	for _, block := range tree.Questions {
		outcome, _ := result.Outcome(block.ID)
		selected := outcome.Selected
		if !outcome.Answered() {
			selected = "-"
		}
		fmt.Fprintf(w, "%s (%s): %s  [%s → %s]\n", block.Badge, block.ID, block.Explanation.Marker, selected, outcome.Correct)
		if block.Explanation.Text != "" {
			fmt.Fprintf(w, "  %s\n", block.Explanation.Text)
		}
	}
	fmt.Fprintln(w, render.FormatSummary(tree.Summary, noColor))
}
