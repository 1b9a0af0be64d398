package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// size of the run and where /save writes.
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf(" questtweaks | Changes: %d | Quests: %d",
		m.report.Events.Len(), len(m.report.Events.Quests()))

	right := "Out: -- "
	if m.outDir != "" {
		right = fmt.Sprintf("Out: %s ", m.outDir)
	}
	if m.saved {
		right = "Saved | " + right
	}

	failed := ""
	if n := len(m.report.Failures); n > 0 {
		failed = fmt.Sprintf(" | Failed: %d", n)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(failed) - lipgloss.Width(right)
	if gap < 0 {
		// Drop the output directory before anything else.
		right = ""
		gap = m.width - lipgloss.Width(left) - lipgloss.Width(failed)
		if gap < 0 {
			gap = 0
		}
	}

	if failed == "" {
		bar := left + strings.Repeat(" ", gap) + right
		return styleStatusBar.Width(m.width).Render(bar)
	}
	return styleStatusBar.Render(left) +
		styleStatusFailed.Render(failed) +
		styleStatusBar.Render(strings.Repeat(" ", gap)+right)
}
