package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Summary computes count, total, average and highest amount.
func (l *Ledger) Summary() model.SummaryStats {
	stats := model.SummaryStats{
		Total:   decimal.Zero,
		Average: decimal.Zero,
		Max:     decimal.Zero,
	}
	if len(l.records) == 0 {
		return stats
	}

	stats.Max = l.records[0].Amount
	for _, e := range l.records {
		stats.Count++
		stats.Total = stats.Total.Add(e.Amount)
		if e.Amount.GreaterThan(stats.Max) {
			stats.Max = e.Amount
		}
	}
	stats.Average = stats.Total.Div(decimal.NewFromInt(int64(stats.Count)))

	return stats
}

// CategoryTotals sums amounts per category label (exact match).
func (l *Ledger) CategoryTotals() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range l.records {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// CategoryShares returns per-category totals in first-seen order, each with
// its percentage of the grand total.
func (l *Ledger) CategoryShares() []model.CategoryShare {
	idx := make(map[string]int)
	var shares []model.CategoryShare
	grand := decimal.Zero

	for _, e := range l.records {
		i, ok := idx[e.Category]
		if !ok {
			i = len(shares)
			idx[e.Category] = i
			shares = append(shares, model.CategoryShare{Category: e.Category, Total: decimal.Zero})
		}
		shares[i].Total = shares[i].Total.Add(e.Amount)
		shares[i].Entries++
		grand = grand.Add(e.Amount)
	}

	if grand.IsZero() {
		return shares
	}
	for i := range shares {
		shares[i].SharePercent = shares[i].Total.Div(grand).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	return shares
}

// ExportRows returns the header followed by one row per expense, amounts
// fixed to two decimals. An empty ledger yields ErrEmptyLedger.
func (l *Ledger) ExportRows() ([][]string, error) {
	if len(l.records) == 0 {
		return nil, ErrEmptyLedger
	}

	rows := make([][]string, 0, len(l.records)+1)
	header := make([]string, len(ExportHeader))
	copy(header, ExportHeader)
	rows = append(rows, header)

	for _, e := range l.records {
		rows = append(rows, []string{e.Date, e.Category, e.AmountString(), e.Description})
	}
	return rows, nil
}
