package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// entriesState tracks scrolling in the entries table.
type entriesState struct {
	cursor int
	offset int
}

// updateEntries handles navigation keys on the entries tab.
func (a App) updateEntries(key string) (bool, App) {
	n := a.ledger.Count()
	if n == 0 {
		return false, a
	}

	switch key {
	case "j", "down":
		if a.entries.cursor < n-1 {
			a.entries.cursor++
		}
	case "k", "up":
		if a.entries.cursor > 0 {
			a.entries.cursor--
		}
	case "g", "home":
		a.entries.cursor = 0
	case "G", "end":
		a.entries.cursor = n - 1
	default:
		return false, a
	}
	return true, a
}

func (a App) renderEntriesTab(cw, h int) string {
	t := theme.Active
	records := a.ledger.Records()

	if len(records) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		return components.ContentCard("Entries", muted.Render("No expenses yet. Press [a] to add one."), cw)
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.Value).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)

	innerW := components.CardInnerWidth(cw)
	const (
		idxW  = 5
		dateW = 12
		catW  = 14
		amtW  = 14
	)
	descW := innerW - idxW - dateW - catW - amtW - 4
	if descW < 8 {
		descW = 8
	}

	// Card border, title, header and rule take 5 lines
	visible := h - 5
	if visible < 1 {
		visible = 1
	}
	offset := a.entries.offset
	if a.entries.cursor < offset {
		offset = a.entries.cursor
	}
	if a.entries.cursor >= offset+visible {
		offset = a.entries.cursor - visible + 1
	}

	sym := a.cfg.General.CurrencySymbol

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%*s %-*s %-*s %*s %-*s",
		idxW, "#", dateW, "Date", catW, "Category", amtW, "Amount", descW, "Description")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))

	end := offset + visible
	if end > len(records) {
		end = len(records)
	}
	for i := offset; i < end; i++ {
		r := records[i]
		idx := fmt.Sprintf("%*d ", idxW, i+1)
		date := fmt.Sprintf("%-*s ", dateW, truncStr(r.Date, dateW))
		cat := fmt.Sprintf("%-*s ", catW, truncStr(r.Category, catW))
		amt := fmt.Sprintf("%*s ", amtW, cli.FormatCurrency(sym, r.Amount))
		desc := fmt.Sprintf("%-*s", descW, truncStr(r.Description, descW))

		b.WriteString("\n")
		if i == a.entries.cursor {
			b.WriteString(selStyle.Render(idx + date + cat + amt + desc))
			continue
		}
		b.WriteString(mutedStyle.Render(idx))
		b.WriteString(rowStyle.Render(date + cat))
		b.WriteString(valueStyle.Render(amt))
		b.WriteString(rowStyle.Render(desc))
	}

	title := fmt.Sprintf("Entries (%d)", len(records))
	return components.ContentCard(title, b.String(), cw)
}
