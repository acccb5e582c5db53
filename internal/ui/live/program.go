package live

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizpage/internal/bank"
	"quizpage/internal/session"
)

// Run starts an interactive quiz on the terminal and blocks until the user
// quits or ctx is done. It returns the final session state.
func Run(ctx context.Context, b *bank.Bank, stdin io.Reader, stdout io.Writer, opts Options) (session.State, error) {
	if b == nil {
		return session.State{}, errors.New("live: bank is nil")
	}
	model := NewModel(b, session.New(session.NewID()), opts)
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	if stdin != nil {
		programOpts = append(programOpts, tea.WithInput(stdin))
	}
	if stdout != nil {
		programOpts = append(programOpts, tea.WithOutput(stdout))
	}
	final, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return session.State{}, fmt.Errorf("live ui: %w", err)
	}
	finished, ok := final.(Model)
	if !ok {
		return session.State{}, fmt.Errorf("live ui: unexpected model %T", final)
	}
	return finished.State(), nil
}
