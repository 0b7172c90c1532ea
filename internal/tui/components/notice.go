package components

import (
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// NoticeKind selects the accent color of a notice.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
	NoticeError
)

// Notice is a blocking message box; the app ignores other input until it is
// dismissed.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// RenderNotice renders the notice as a centered box filling width x height.
func RenderNotice(n Notice, width, height int) string {
	t := theme.Active

	accent := t.Accent
	icon := "ℹ"
	switch n.Kind {
	case NoticeWarning:
		accent = t.Yellow
		icon = "⚠"
	case NoticeError:
		accent = t.Red
		icon = "✖"
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		BorderBackground(t.Background).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(accent).Background(t.Surface).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	body := titleStyle.Render(icon+" "+n.Title) + "\n\n" +
		msgStyle.Render(n.Message) + "\n\n" +
		hintStyle.Render("Press Enter to continue")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, boxStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}
