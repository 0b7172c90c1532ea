package model

import "github.com/shopspring/decimal"

// SummaryStats holds the top-level aggregate across all expenses.
// All values are zero for an empty ledger.
type SummaryStats struct {
	Count   int
	Total   decimal.Decimal
	Average decimal.Decimal
	Max     decimal.Decimal
}

// CategoryShare holds the summed amount for one category and its share
// of the grand total.
type CategoryShare struct {
	Category     string
	Total        decimal.Decimal
	Entries      int
	SharePercent float64 // 0-100
}
