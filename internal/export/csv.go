// Package export writes ledger snapshots to files chosen by the user.
package export

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
)

const numFields = 4

// WriteCSV writes rows with standard CSV quoting.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "writing row %d", i+1)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses an exported CSV file back into expenses.
// The header row is required.
func ReadCSV(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading expenses CSV")
	}
	if len(records) == 0 {
		return nil, errors.New("missing header row")
	}
	for i, h := range ledger.ExportHeader {
		if records[0][i] != h {
			return nil, errors.Errorf("unexpected header %q in column %d", records[0][i], i+1)
		}
	}

	expenses := make([]model.Expense, 0, len(records)-1)
	for i, rec := range records[1:] {
		e, err := ledger.Parse(rec[0], rec[1], rec[2], rec[3])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+2)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}
