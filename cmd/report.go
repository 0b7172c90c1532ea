package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/fintrack/internal/cli"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/pipeline"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <file|dir>...",
	Short: "Summarize previously exported .csv or .db files",
	Long:  "Summarize one or more exported files. Directories are searched for .csv and .db exports and all records are merged.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	files, err := pipeline.ScanPaths(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no export files found in %s", strings.Join(args, ", "))
	}

	errOut := cmd.ErrOrStderr()
	result := pipeline.Load(files, func(current, total int) {
		if total > 1 {
			fmt.Fprintf(errOut, "\r  Loading [%d/%d]", current, total)
		}
	})
	if len(files) > 1 {
		fmt.Fprintln(errOut)
	}

	// A single unreadable file is a hard error, a bad file among many is a warning
	if result.LoadedFiles == 0 {
		return result.Errors[files[0]]
	}

	source := filepath.Base(files[0])
	if len(files) > 1 {
		source = fmt.Sprintf("%d files", result.LoadedFiles)
	}

	cfg := loadConfig()
	out := cmd.OutOrStdout()
	renderReport(out, result.Ledger, cfg.General.CurrencySymbol, source)

	for _, f := range files {
		if err := result.Errors[f]; err != nil {
			fmt.Fprintln(errOut, cli.RenderWarning(fmt.Sprintf("  skipped %s: %s", f, err)))
		}
	}
	return nil
}

// renderReport prints the summary and per-category tables for l.
func renderReport(w io.Writer, l *ledger.Ledger, symbol, source string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("EXPENSE REPORT  "+source))
	fmt.Fprintln(w)

	if l.Count() == 0 {
		fmt.Fprintln(w, cli.RenderMuted("  No expenses in this file."))
		return
	}

	stats := l.Summary()
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Entries", cli.FormatNumber(int64(stats.Count))},
			{"---"},
			{"Total", cli.FormatCurrency(symbol, stats.Total)},
			{"Average", cli.FormatCurrency(symbol, stats.Average)},
			{"Highest", cli.FormatCurrency(symbol, stats.Max)},
		},
	}))
	fmt.Fprintln(w)

	shares := l.CategoryShares()
	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{
			s.Category,
			cli.FormatNumber(int64(s.Entries)),
			cli.FormatCurrency(symbol, s.Total),
			cli.FormatPercent(s.SharePercent),
		})
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Entries", "Total", "Share"},
		Rows:    rows,
	}))

	if stats.Total.IsNegative() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.RenderWarning("  Net total is negative; refunds exceed spending."))
	}
}
