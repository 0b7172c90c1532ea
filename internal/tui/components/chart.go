package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// NoDataText is shown in place of the distribution chart for an empty ledger.
const NoDataText = "No data to display."

// Slice is one category of the distribution chart.
type Slice struct {
	Label   string
	Amount  string  // pre-formatted
	Percent float64 // 0-100
}

// ShareChart renders one labelled bar per slice, each sized by its share of
// the total and annotated with the percentage.
func ShareChart(slices []Slice, width int) string {
	t := theme.Active
	bg := lipgloss.NewStyle().Background(t.Surface)

	if len(slices) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(NoDataText)
	}

	labelW := 0
	amountW := 0
	for _, s := range slices {
		labelW = max(labelW, lipgloss.Width(s.Label))
		amountW = max(amountW, lipgloss.Width(s.Amount))
	}
	if labelW > 18 {
		labelW = 18
	}

	pctW := 6 // "100.0%"
	barW := width - labelW - amountW - pctW - 3
	if barW < 8 {
		barW = 8
	}

	colors := t.SliceColors()
	pctStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	lines := make([]string, len(slices))
	for i, s := range slices {
		color := colors[i%len(colors)]
		labelStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

		bar := progress.New(
			progress.WithSolidFill(string(color)),
			progress.WithWidth(barW),
			progress.WithoutPercentage(),
		)
		bar.EmptyColor = string(t.SurfaceBright)

		frac := s.Percent / 100
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}

		lines[i] = labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(s.Label, labelW))) +
			bg.Render(" ") +
			bar.ViewAs(frac) +
			bg.Render(" ") +
			pctStyle.Render(fmt.Sprintf("%*s", pctW, fmt.Sprintf("%.1f%%", s.Percent))) +
			bg.Render(" ") +
			amountStyle.Render(fmt.Sprintf("%*s", amountW, s.Amount))
	}

	return strings.Join(lines, "\n")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}
