// Package model defines domain types for fintrack expenses and statistics.
package model

import "github.com/shopspring/decimal"

// DefaultCategories is the suggestion list offered by the add form.
// Any other label is accepted by the ledger.
var DefaultCategories = []string{"Food", "Travel", "Utilities", "Shopping", "Others"}

// Expense is one recorded expense. Values are never modified after the
// ledger accepts them.
type Expense struct {
	Date        string // as typed by the user, not parsed
	Category    string
	Amount      decimal.Decimal
	Description string
}

// AmountString renders the amount with two decimals, as exported.
func (e Expense) AmountString() string {
	return e.Amount.StringFixed(2)
}
