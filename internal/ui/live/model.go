package live

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizpage/internal/bank"
	"quizpage/internal/grading"
	"quizpage/internal/render"
	"quizpage/internal/session"
)

// Model renders an interactive quiz using Bubble Tea. Key presses become
// session actions fed through a dispatcher, one message at a time.
type Model struct {
	bank       *bank.Bank
	dispatcher *session.Dispatcher
	notices    *notices
	cursor     render.Cursor
	layout     render.TextLayout
	viewport   viewport.Model
	keys       keyMap
	help       help.Model
	noColor    bool
	ready      bool
	lastEvent  string
}

// notices collects what the dispatcher handlers report for one action.
type notices struct {
	event         string
	revealSummary bool
}

func (n *notices) take() (string, bool) {
	event, reveal := n.event, n.revealSummary
	*n = notices{}
	return event, reveal
}

// Options configures the live quiz model.
type Options struct {
	NoColor bool
}

// NewModel constructs a live quiz model for a bank and starting state.
func NewModel(b *bank.Bank, state session.State, opts Options) Model {
	dispatcher := session.NewDispatcher(b, state)
	n := &notices{}
	dispatcher.OnSelect(func(state session.State) {
		answered := 0
		for _, q := range b.All() {
			if state.Selected(q.ID) != "" {
				answered++
			}
		}
		n.event = fmt.Sprintf("answered %d/%d", answered, b.Len())
	})
	dispatcher.OnGrade(func(_ session.State, result grading.Result) {
		n.event = fmt.Sprintf("graded %d/%d (%d%%)", result.CorrectCount, result.Total, result.ScorePercent)
		n.revealSummary = true
	})
	dispatcher.OnReset(func(session.State) {
		n.event = "feedback cleared"
	})
	return Model{
		bank:       b,
		dispatcher: dispatcher,
		notices:    n,
		viewport:   viewport.New(0, 0),
		keys:       defaultKeyMap(),
		help:       help.New(),
		noColor:    opts.NoColor,
	}
}

// State returns the session state held by the model.
func (m Model) State() session.State {
	return m.dispatcher.State()
}

// Cursor returns the focused option.
func (m Model) Cursor() render.Cursor {
	return m.cursor
}

// LastEvent returns the footer message.
func (m Model) LastEvent() string {
	return m.lastEvent
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.help.Width = typed.Width
		m.viewport.Width = typed.Width
		m.viewport.Height = max(typed.Height-m.chromeHeight(), 1)
		m = m.refresh()
		m = m.followCursor()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(typed)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	counts := optionCounts(render.Build(m.bank, m.State()))
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(counts, m.cursor, -1)
		m = m.refresh().followCursor()
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(counts, m.cursor, 1)
		m = m.refresh().followCursor()
	case key.Matches(msg, m.keys.NextQ):
		m.cursor = jumpQuestion(counts, m.cursor, 1)
		m = m.refresh().followCursor()
	case key.Matches(msg, m.keys.PrevQ):
		m.cursor = jumpQuestion(counts, m.cursor, -1)
		m = m.refresh().followCursor()
	case key.Matches(msg, m.keys.Select):
		m = m.onSelect()
	case key.Matches(msg, m.keys.Clear):
		m = m.onClear()
	case key.Matches(msg, m.keys.Grade):
		m = m.dispatch(session.Action{Kind: session.ActionGrade})
	case key.Matches(msg, m.keys.Reset):
		m = m.dispatch(session.Action{Kind: session.ActionReset})
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// onSelect checks the focused option.
func (m Model) onSelect() Model {
	questions := m.bank.All()
	if m.cursor.Question >= len(questions) {
		return m
	}
	q := questions[m.cursor.Question]
	if m.cursor.Option >= len(q.Options) {
		return m
	}
	return m.dispatch(session.SelectAction(q.ID, q.Options[m.cursor.Option].Key))
}

// onClear removes the selection of the focused question.
func (m Model) onClear() Model {
	questions := m.bank.All()
	if m.cursor.Question >= len(questions) {
		return m
	}
	return m.dispatch(session.Action{Kind: session.ActionClear, QuestionID: questions[m.cursor.Question].ID})
}

// dispatch feeds an action to the session and redraws from the handlers'
// notices. After grading the summary is scrolled into view.
func (m Model) dispatch(action session.Action) Model {
	if err := m.dispatcher.Dispatch(action); err != nil {
		m.lastEvent = err.Error()
		return m
	}
	event, reveal := m.notices.take()
	m.lastEvent = event
	m = m.refresh()
	if reveal && m.layout.SummaryLine >= 0 {
		m.viewport.SetYOffset(m.layout.SummaryLine - m.viewport.Height/2)
		return m
	}
	return m.followCursor()
}

// refresh re-renders the viewport content from the current state.
func (m Model) refresh() Model {
	tree := render.Build(m.bank, m.State())
	cursor := m.cursor
	m.layout = render.Text(tree, render.TextOptions{
		NoColor: m.noColor,
		Width:   m.viewport.Width,
		Cursor:  &cursor,
	})
	m.viewport.SetContent(m.layout.Content)
	return m
}

// followCursor scrolls just enough to keep the focused option visible.
func (m Model) followCursor() Model {
	if m.cursor.Question >= len(m.layout.OptionLines) {
		return m
	}
	lines := m.layout.OptionLines[m.cursor.Question]
	if m.cursor.Option >= len(lines) {
		return m
	}
	line := lines[m.cursor.Option]
	if m.cursor.Option == 0 {
		// Keep the badge, context and prompt of the question in view too.
		line = max(line-1, 0)
	}
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case lines[m.cursor.Option] >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(lines[m.cursor.Option] - m.viewport.Height + 1)
	}
	return m
}

// chromeHeight is the number of lines used outside the viewport.
func (m Model) chromeHeight() int {
	return 3
}

// View renders the live quiz.
func (m Model) View() string {
	if !m.ready {
		return "Loading quiz..."
	}
	header := renderHeader(m.bank.Title(), m.State(), m.noColor)
	footer := renderFooter(m.lastEvent, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer, m.help.View(m.keys))
}
