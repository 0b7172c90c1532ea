package ledger

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestSummaryTwoRecords(t *testing.T) {
	l := New()
	_, err := l.Add("01/01/2024", "Food", "100.0", "lunch")
	require.NoError(t, err)
	_, err = l.Add("02/01/2024", "Travel", "50.0", "bus")
	require.NoError(t, err)

	s := l.Summary()
	assert.Equal(t, 2, s.Count)
	assert.True(t, s.Total.Equal(dec("150")), "total = %s", s.Total)
	assert.True(t, s.Average.Equal(dec("75")), "average = %s", s.Average)
	assert.True(t, s.Max.Equal(dec("100")), "max = %s", s.Max)

	totals := l.CategoryTotals()
	require.Len(t, totals, 2)
	assert.True(t, totals["Food"].Equal(dec("100")))
	assert.True(t, totals["Travel"].Equal(dec("50")))
}

func TestSummaryEmpty(t *testing.T) {
	s := New().Summary()
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.Total.IsZero())
	assert.True(t, s.Average.IsZero())
	assert.True(t, s.Max.IsZero())
	assert.Equal(t, "0.00", s.Average.StringFixed(2))
}

func TestAddRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name                          string
		date, category, amount, descr string
	}{
		{"no date", "", "Food", "10", ""},
		{"no category", "01/01/2024", "", "10", ""},
		{"no amount", "01/01/2024", "Food", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := New()
			_, err := l.Add(tc.date, tc.category, tc.amount, tc.descr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "got %v", err)
			assert.Equal(t, 0, l.Count())
		})
	}
}

func TestAddRejectsNonNumericAmount(t *testing.T) {
	l := New()
	_, err := l.Add("01/01/2024", "Food", "ten", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat), "got %v", err)
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, 0, l.Count())
}

func TestAddBlankAmountIsFormatError(t *testing.T) {
	l := New()
	_, err := l.Add("01/01/2024", "Food", "   ", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat), "got %v", err)
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, 0, l.Count())
}

func TestAddAmountWithSurroundingSpaces(t *testing.T) {
	l := New()
	e, err := l.Add(" ", "Food", " 12.5 ", "")
	require.NoError(t, err)
	assert.Equal(t, "12.50", e.AmountString())
	assert.Equal(t, " ", e.Date)
}

func TestAddNormalizesCRLFInDescription(t *testing.T) {
	l := New()
	e, err := l.Add("01/01/2024", "Food", "1", "a\r\nb\nc")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc", e.Description)
}

func TestAddAcceptsNegativeAndFreeformCategory(t *testing.T) {
	l := New()
	_, err := l.Add("yesterday", "Gifts", "-12.5", "refund")
	require.NoError(t, err)
	_, err = l.Add("today", "Gifts", "0", "")
	require.NoError(t, err)

	s := l.Summary()
	assert.Equal(t, 2, s.Count)
	assert.True(t, s.Max.Equal(decimal.Zero))
	assert.True(t, s.Total.Equal(dec("-12.5")))
}

func TestMaxWithAllNegative(t *testing.T) {
	l := New()
	_, _ = l.Add("d", "Food", "-3", "")
	_, _ = l.Add("d", "Food", "-1", "")
	assert.True(t, l.Summary().Max.Equal(dec("-1")))
}

func TestCategoryTotalsPartitionTotal(t *testing.T) {
	l := New()
	inputs := []struct{ cat, amt string }{
		{"Food", "12.34"}, {"Travel", "7"}, {"Food", "0.66"},
		{"Utilities", "99.99"}, {"Shopping", "1e2"}, {"Others", "3.3"},
	}
	for _, in := range inputs {
		_, err := l.Add("01/02/2024", in.cat, in.amt, "")
		require.NoError(t, err)
	}

	sum := decimal.Zero
	for _, v := range l.CategoryTotals() {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(l.Summary().Total), "partition %s != total %s", sum, l.Summary().Total)
	assert.True(t, l.CategoryTotals()["Food"].Equal(dec("13")))
}

func TestCategoryTotalsEmpty(t *testing.T) {
	assert.Empty(t, New().CategoryTotals())
	assert.Empty(t, New().CategoryShares())
}

func TestCategorySharesOrderAndPercent(t *testing.T) {
	l := New()
	_, _ = l.Add("d", "Travel", "25", "")
	_, _ = l.Add("d", "Food", "50", "")
	_, _ = l.Add("d", "Travel", "25", "")

	shares := l.CategoryShares()
	require.Len(t, shares, 2)
	assert.Equal(t, "Travel", shares[0].Category)
	assert.Equal(t, 2, shares[0].Entries)
	assert.InDelta(t, 50.0, shares[0].SharePercent, 1e-9)
	assert.Equal(t, "Food", shares[1].Category)
	assert.InDelta(t, 50.0, shares[1].SharePercent, 1e-9)
}

func TestExportRows(t *testing.T) {
	l := New()
	_, _ = l.Add("01/01/2024", "Food", "100", "lunch, with \"friends\"")
	_, _ = l.Add("02/01/2024", "Travel", "3.456", "")

	rows, err := l.ExportRows()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Category", "Amount", "Description"}, rows[0])
	assert.Equal(t, []string{"01/01/2024", "Food", "100.00", "lunch, with \"friends\""}, rows[1])
	assert.Equal(t, []string{"02/01/2024", "Travel", "3.46", ""}, rows[2])

	// Mutating the returned header must not leak into later exports.
	rows[0][0] = "X"
	again, err := l.ExportRows()
	require.NoError(t, err)
	assert.Equal(t, "Date", again[0][0])
}

func TestExportRowsEmpty(t *testing.T) {
	rows, err := New().ExportRows()
	assert.Nil(t, rows)
	assert.True(t, errors.Is(err, ErrEmptyLedger))
}

func TestRecordsIsCopy(t *testing.T) {
	l := New()
	_, _ = l.Add("d", "Food", "1", "")
	recs := l.Records()
	recs[0].Category = "Changed"
	assert.Equal(t, "Food", l.Records()[0].Category)
}
