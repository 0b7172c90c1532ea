// Package ledger holds the in-memory expense ledger and its derived views.
package ledger

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"
)

var (
	// ErrValidation is returned by Add when date, category or amount is empty.
	ErrValidation = errors.New("required field missing")
	// ErrFormat is returned by Add when the amount is not a number.
	ErrFormat = errors.New("amount is not a number")
	// ErrEmptyLedger is returned by ExportRows when there is nothing to export.
	ErrEmptyLedger = errors.New("ledger is empty")
)

// ExportHeader is the first row produced by ExportRows.
var ExportHeader = []string{"Date", "Category", "Amount", "Description"}

// Ledger is an insertion-ordered list of expenses. It is owned by its
// creator and is not safe for concurrent use.
type Ledger struct {
	records []model.Expense
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Add validates raw form input and appends a new expense.
// A failed call leaves the ledger unchanged.
func (l *Ledger) Add(date, category, amount, description string) (model.Expense, error) {
	e, err := Parse(date, category, amount, description)
	if err != nil {
		return model.Expense{}, err
	}
	l.records = append(l.records, e)
	return e, nil
}

// Append adds an already parsed expense, used when loading exported files.
func (l *Ledger) Append(e model.Expense) {
	l.records = append(l.records, e)
}

// Parse converts raw text fields into an Expense. Only empty strings count
// as missing; the amount is parsed with surrounding whitespace removed, so a
// blank amount is a format error. CRLF line breaks in the description are
// stored as LF.
func Parse(date, category, amount, description string) (model.Expense, error) {
	var missing []string
	if date == "" {
		missing = append(missing, "date")
	}
	if category == "" {
		missing = append(missing, "category")
	}
	if amount == "" {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return model.Expense{}, errors.Wrapf(ErrValidation, "missing %s", strings.Join(missing, ", "))
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return model.Expense{}, errors.Wrapf(ErrFormat, "parsing %q", amount)
	}

	return model.Expense{
		Date:        date,
		Category:    category,
		Amount:      value,
		Description: strings.ReplaceAll(description, "\r\n", "\n"),
	}, nil
}

// Count returns the number of recorded expenses.
func (l *Ledger) Count() int {
	return len(l.records)
}

// Records returns a copy of the expenses in insertion order.
func (l *Ledger) Records() []model.Expense {
	out := make([]model.Expense, len(l.records))
	copy(out, l.records)
	return out
}
