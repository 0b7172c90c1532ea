package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/fintrack/internal/export"
	"github.com/theirongolddev/fintrack/internal/ledger"
)

func TestRenderReportTotals(t *testing.T) {
	l := ledger.New()
	_, err := l.Add("01/03/2024", "Food", "50", "")
	require.NoError(t, err)
	_, err = l.Add("02/03/2024", "Travel", "100", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	renderReport(&buf, l, "$", "expenses.csv")
	out := buf.String()

	for _, want := range []string{"EXPENSE REPORT", "$150.00", "$75.00", "$100.00", "By Category", "Food", "Travel", "33.3%", "66.7%"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "negative")
}

func TestRenderReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, ledger.New(), "$", "empty.csv")
	assert.Contains(t, buf.String(), "No expenses in this file.")
}

func TestRenderReportNegativeTotal(t *testing.T) {
	l := ledger.New()
	_, err := l.Add("01/03/2024", "Shopping", "-20", "refund")
	require.NoError(t, err)

	var buf bytes.Buffer
	renderReport(&buf, l, "$", "refunds.csv")
	assert.Contains(t, buf.String(), "-$20.00")
	assert.Contains(t, buf.String(), "refunds exceed spending")
}

func TestReportCommandReadsExport(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	l := ledger.New()
	_, err := l.Add("01/03/2024", "Food", "12.5", "tea, biscuits")
	require.NoError(t, err)
	path, err := export.ToFile(filepath.Join(t.TempDir(), "week.db"), l)
	require.NoError(t, err)

	var buf bytes.Buffer
	reportCmd.SetOut(&buf)
	defer reportCmd.SetOut(nil)

	require.NoError(t, runReport(reportCmd, []string{path}))
	assert.Contains(t, buf.String(), "₹12.50")
}

func TestReportCommandMergesDirectory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	for i, amount := range []string{"10", "20"} {
		l := ledger.New()
		_, err := l.Add("01/03/2024", "Food", amount, "")
		require.NoError(t, err)
		_, err = export.ToFile(filepath.Join(dir, []string{"a.csv", "b.csv"}[i]), l)
		require.NoError(t, err)
	}

	var out, errOut bytes.Buffer
	reportCmd.SetOut(&out)
	reportCmd.SetErr(&errOut)
	defer func() {
		reportCmd.SetOut(nil)
		reportCmd.SetErr(nil)
	}()

	require.NoError(t, runReport(reportCmd, []string{dir}))
	assert.Contains(t, out.String(), "2 files")
	assert.Contains(t, out.String(), "₹30.00")
}
