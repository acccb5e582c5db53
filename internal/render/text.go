package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizpage/internal/grading"
)

// Cursor points at one option control in the tree.
type Cursor struct {
	Question int
	Option   int
}

// TextOptions configures terminal output.
type TextOptions struct {
	NoColor bool
	// Width wraps prompt and explanation text when positive.
	Width int
	// Cursor marks the focused option when set.
	Cursor *Cursor
}

// TextLayout is rendered terminal text plus the line positions a scrolling
// surface needs.
type TextLayout struct {
	Content string
	// OptionLines holds the zero-based line of every option control,
	// indexed by question then option.
	OptionLines [][]int
	// SummaryLine is the line of the summary, or -1 when it is hidden.
	SummaryLine int
}

// Text renders the tree as terminal text.
func Text(tree Tree, opts TextOptions) TextLayout {
	styles := newTextStyles(opts.NoColor)
	b := &lineBuilder{}
	layout := TextLayout{
		OptionLines: make([][]int, len(tree.Questions)),
		SummaryLine: -1,
	}
	for qi, block := range tree.Questions {
		if qi > 0 {
			b.add("")
		}
		b.add(styles.badge.Render(block.Badge) + " " + styles.muted.Render("["+block.ID+"]"))
		if block.HasContext() {
			for _, line := range strings.Split(block.Context, "\n") {
				b.add(styles.context.Render("  │ " + line))
			}
		}
		b.add(wrap(block.Prompt, opts.Width, styles.prompt))
		lines := make([]int, len(block.Options))
		for oi, control := range block.Options {
			focused := opts.Cursor != nil && opts.Cursor.Question == qi && opts.Cursor.Option == oi
			lines[oi] = b.lines
			b.add(formatControl(control, focused, styles))
		}
		layout.OptionLines[qi] = lines
		if !block.Explanation.Hidden {
			b.add(formatSlot(block.Explanation, opts.Width, styles))
		}
	}
	if tree.Summary.Visible {
		b.add("")
		layout.SummaryLine = b.lines
		b.add(FormatSummary(tree.Summary, opts.NoColor))
	}
	layout.Content = b.String()
	return layout
}

// FormatSummary renders the summary as a single line, or "" when hidden.
func FormatSummary(summary Summary, noColor bool) string {
	if !summary.Visible {
		return ""
	}
	line := ScoreLabel + ": " + strconv.Itoa(summary.ScorePercent) + "% (" + summary.Fraction() + ") · " + summary.Message
	if noColor {
		return line
	}
	color := lipgloss.Color("220")
	if summary.Category == grading.CategoryPass {
		color = lipgloss.Color("42")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(line)
}

func formatControl(control Control, focused bool, styles textStyles) string {
	pointer := "  "
	if focused {
		pointer = "> "
	}
	radio := "( )"
	if control.Checked {
		radio = "(•)"
	}
	line := pointer + radio + " " + control.Value + ") " + control.Label
	if focused {
		return styles.focus.Render(line)
	}
	return line
}

func formatSlot(slot Slot, width int, styles textStyles) string {
	marker := styles.incorrect.Render(slot.Marker)
	if slot.Correct {
		marker = styles.correct.Render(slot.Marker)
	}
	if slot.Text == "" {
		return "  " + marker
	}
	return "  " + marker + "\n" + wrap(slot.Text, width, styles.explain.PaddingLeft(2))
}

func wrap(text string, width int, style lipgloss.Style) string {
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(text)
}

type lineBuilder struct {
	sb    strings.Builder
	lines int
}

// add appends a block of one or more lines.
func (b *lineBuilder) add(block string) {
	if b.lines > 0 {
		b.sb.WriteByte('\n')
	}
	b.sb.WriteString(block)
	b.lines += lipgloss.Height(block)
}

func (b *lineBuilder) String() string {
	return b.sb.String()
}

type textStyles struct {
	badge     lipgloss.Style
	muted     lipgloss.Style
	context   lipgloss.Style
	prompt    lipgloss.Style
	focus     lipgloss.Style
	explain   lipgloss.Style
	correct   lipgloss.Style
	incorrect lipgloss.Style
}

func newTextStyles(noColor bool) textStyles {
	if noColor {
		plain := lipgloss.NewStyle()
		return textStyles{
			badge:     plain,
			muted:     plain,
			context:   plain,
			prompt:    plain,
			focus:     plain,
			explain:   plain,
			correct:   plain,
			incorrect: plain,
		}
	}
	return textStyles{
		badge:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		context:   lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		prompt:    lipgloss.NewStyle().Bold(true),
		focus:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		explain:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		correct:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		incorrect: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}
