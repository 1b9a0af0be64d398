package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusFailed = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("203")).
				Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleHeading = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	styleEventType = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	styleEventData = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleNotice = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleQueryInput = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindHeading lineKind = iota
	kindEvent
	kindNotice
	kindSystem
	kindError
)

// classifyLine determines what kind of report line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "Unknown query"),
		strings.HasPrefix(line, "Usage:"),
		strings.Contains(line, "patches failed"):
		return kindError
	case strings.HasPrefix(line, "No "):
		return kindNotice
	case strings.HasPrefix(line, "  "):
		return kindEvent
	default:
		return kindHeading
	}
}

// styledEvent renders an indented "type key=value ..." line with the event
// type highlighted.
func styledEvent(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]
	typ, rest, _ := strings.Cut(trimmed, " ")
	out := indent + styleEventType.Render(typ)
	if rest != "" {
		out += " " + styleEventData.Render(rest)
	}
	return out
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
