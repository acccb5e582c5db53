// Package plain runs a quiz session over line-oriented input and output,
// for terminals without cursor control and for scripted use.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"quizpage/internal/bank"
	"quizpage/internal/grading"
	"quizpage/internal/render"
	"quizpage/internal/session"
)

// errQuit is returned by parseCommand for the quit command.
var errQuit = errors.New("quit")

// Options configures the plain surface.
type Options struct {
	NoColor bool
}

// Run reads commands from in until EOF, quit, or ctx is done, and returns
// the final session state.
func Run(ctx context.Context, b *bank.Bank, in io.Reader, out io.Writer, opts Options) (session.State, error) {
	if b == nil {
		return session.State{}, errors.New("plain: bank is nil")
	}
	dispatcher := session.NewDispatcher(b, session.New(session.NewID()))
	printer := &printer{out: out, bank: b, noColor: opts.NoColor}
	dispatcher.OnSelect(printer.selected)
	dispatcher.OnGrade(printer.graded)
	dispatcher.OnReset(printer.reset)

	printer.show(dispatcher.State())
	printer.usage()

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return dispatcher.State(), err
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return dispatcher.State(), fmt.Errorf("read command: %w", err)
			}
			fmt.Fprintln(out)
			return dispatcher.State(), nil
		}
		cmd, err := parseCommand(scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return dispatcher.State(), nil
		case err != nil:
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		switch cmd.kind {
		case commandNone:
		case commandHelp:
			printer.usage()
		case commandShow:
			printer.show(dispatcher.State())
		case commandAction:
			if err := dispatcher.Dispatch(cmd.action); err != nil {
				fmt.Fprintf(out, "%v\n", err)
			}
		}
	}
}

type printer struct {
	out     io.Writer
	bank    *bank.Bank
	noColor bool
}

func (p *printer) show(state session.State) {
	layout := render.Text(render.Build(p.bank, state), render.TextOptions{NoColor: p.noColor})
	fmt.Fprintln(p.out, layout.Content)
}

func (p *printer) usage() {
	fmt.Fprintln(p.out, "Commands: <id> <key> | select <id> <key> | clear <id> | grade | reset | show | help | quit")
}

func (p *printer) selected(state session.State) {
	answered := 0
	for _, q := range p.bank.All() {
		if state.Selected(q.ID) != "" {
			answered++
		}
	}
	fmt.Fprintf(p.out, "Answered %d/%d\n", answered, p.bank.Len())
}

func (p *printer) graded(state session.State, result grading.Result) {
	tree := render.Build(p.bank, state)
	for _, block := range tree.Questions {
		slot := block.Explanation
		if slot.Hidden {
			continue
		}
		fmt.Fprintf(p.out, "%s %s\n  %s\n", block.Badge, slot.Marker, slot.Text)
	}
	fmt.Fprintln(p.out, render.FormatSummary(tree.Summary, p.noColor))
}

func (p *printer) reset(session.State) {
	fmt.Fprintln(p.out, "Feedback cleared.")
}

type commandKind int

const (
	commandNone commandKind = iota
	commandHelp
	commandShow
	commandAction
)

type command struct {
	kind   commandKind
	action session.Action
}

// parseCommand parses one input line.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{kind: commandNone}, nil
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]
	switch name {
	case "quit", "exit", "q":
		if len(args) == 0 {
			return command{}, errQuit
		}
	case "help", "?":
		if len(args) == 0 {
			return command{kind: commandHelp}, nil
		}
	case "show":
		if len(args) == 0 {
			return command{kind: commandShow}, nil
		}
	case "grade":
		return actionCommand(session.Action{Kind: session.ActionGrade}, args, 0)
	case "reset":
		return actionCommand(session.Action{Kind: session.ActionReset}, args, 0)
	case "clear":
		if len(args) != 1 {
			return command{}, fmt.Errorf("usage: clear <id>")
		}
		return actionCommand(session.Action{Kind: session.ActionClear, QuestionID: args[0]}, args, 1)
	case "select":
		if len(args) != 2 {
			return command{}, fmt.Errorf("usage: select <id> <key>")
		}
		return actionCommand(session.SelectAction(args[0], args[1]), args, 2)
	}
	if len(fields) == 2 {
		return actionCommand(session.SelectAction(fields[0], fields[1]), nil, 0)
	}
	return command{}, fmt.Errorf("unknown command %q (type help)", fields[0])
}

func actionCommand(action session.Action, args []string, want int) (command, error) {
	if len(args) != want {
		return command{}, fmt.Errorf("%s takes %d argument(s)", action.Kind, want)
	}
	return command{kind: commandAction, action: action}, nil
}
