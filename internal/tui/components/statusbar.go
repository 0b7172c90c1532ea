package components

import (
	"fmt"

	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with the key hints on the
// left and the entry count on the right.
func RenderStatusBar(width, entries int, hints string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " " + hints
	right := fmt.Sprintf("%d entries ", entries)
	if entries == 1 {
		right = "1 entry "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.Render(left + fmt.Sprintf("%*s", padding, "") + right)
}
