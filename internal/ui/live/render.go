package live

import (
	"github.com/charmbracelet/lipgloss"

	"quizpage/internal/session"
)

// renderHeader renders the title and session line.
func renderHeader(title string, state session.State, noColor bool) string {
	line := title + " | Session " + shortID(state.ID) + " | " + phaseLabel(state.Phase)
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderFooter renders the last event line.
func renderFooter(lastEvent string, noColor bool) string {
	if lastEvent == "" {
		return ""
	}
	return stylize("Last event: "+lastEvent, noColor, lipgloss.Color("244"))
}

// phaseLabel maps the session phase to a display label.
func phaseLabel(phase session.Phase) string {
	switch phase {
	case session.PhaseGraded:
		return "graded"
	default:
		return "answering"
	}
}

// shortID trims a session id for the header.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
