package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/tui/components"
	"github.com/theirongolddev/fintrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSummaryCards(cw int) string {
	stats := a.ledger.Summary()
	sym := a.cfg.General.CurrencySymbol

	return components.MetricCardRow([]components.Metric{
		{Label: "Total Expense", Value: cli.FormatCurrency(sym, stats.Total)},
		{Label: "Average Expense", Value: cli.FormatCurrency(sym, stats.Average)},
		{Label: "Highest Expense", Value: cli.FormatCurrency(sym, stats.Max)},
		{Label: "Entries", Value: cli.FormatNumber(int64(stats.Count))},
	}, cw)
}

// renderDistributionCard draws the per-category share chart inside a card.
func (a App) renderDistributionCard(outerWidth int) string {
	shares := a.ledger.CategoryShares()
	sym := a.cfg.General.CurrencySymbol

	slices := make([]components.Slice, 0, len(shares))
	for _, s := range shares {
		slices = append(slices, components.Slice{
			Label:   s.Category,
			Amount:  cli.FormatCurrency(sym, s.Total),
			Percent: s.SharePercent,
		})
	}

	return components.ContentCard("Expense Distribution",
		components.ShareChart(slices, components.CardInnerWidth(outerWidth)), outerWidth)
}

func (a App) renderOverviewTab(cw int) string {
	var b strings.Builder
	b.WriteString(a.renderSummaryCards(cw))
	b.WriteString("\n")
	b.WriteString(a.renderDistributionCard(cw))

	if a.ledger.Count() > 0 {
		b.WriteString("\n")
		b.WriteString(a.renderCategoryCard(cw))
	}
	return b.String()
}

// renderCategoryCard lists each category with its entry count, total and share.
func (a App) renderCategoryCard(cw int) string {
	t := theme.Active
	sym := a.cfg.General.CurrencySymbol

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.Value).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	innerW := components.CardInnerWidth(cw)
	nameW := innerW - 8 - 16 - 8 - 3
	if nameW < 10 {
		nameW = 10
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %8s %16s %8s", nameW, "Category", "Entries", "Total", "Share")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))

	for _, s := range a.ledger.CategoryShares() {
		b.WriteString("\n")
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s ", nameW, truncStr(s.Category, nameW))))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%8d ", s.Entries)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%16s ", cli.FormatCurrency(sym, s.Total))))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%8s", cli.FormatPercent(s.SharePercent))))
	}

	return components.ContentCard("By Category", b.String(), cw)
}
