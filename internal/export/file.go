package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/store"
)

// DefaultExt is appended to destinations given without an extension.
const DefaultExt = ".csv"

// NormalizePath trims the destination and appends DefaultExt when the
// name has no extension.
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if filepath.Ext(path) == "" {
		path += DefaultExt
	}
	return path
}

// ToFile writes the ledger to path. SQLite extensions get a SQLite file,
// anything else is written as CSV.
// It returns the path actually written. An empty ledger is refused with
// ledger.ErrEmptyLedger and nothing is created.
func ToFile(path string, l *ledger.Ledger) (string, error) {
	rows, err := l.ExportRows()
	if err != nil {
		return "", err
	}

	path = NormalizePath(path)
	if path == "" {
		return "", errors.New("no destination given")
	}

	if isSQLite(path) {
		return path, writeSQLiteFile(path, l.Records())
	}
	return path, writeCSVFile(path, rows)
}

// FromFile loads a previously exported file into a new ledger. SQLite files
// are opened read-only and must hold an expenses table; anything else is
// read as CSV.
func FromFile(path string) (*ledger.Ledger, error) {
	var expenses []model.Expense

	if isSQLite(path) {
		db, err := store.OpenReadOnly(path)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		expenses, err = db.LoadAll()
		if err != nil {
			return nil, err
		}
	} else {
		f, err := os.Open(path) //nolint:gosec // path comes from the user
		if err != nil {
			return nil, errors.Wrap(err, "opening export")
		}
		defer f.Close()
		expenses, err = ReadCSV(f)
		if err != nil {
			return nil, err
		}
	}

	l := ledger.New()
	for _, e := range expenses {
		l.Append(e)
	}
	return l, nil
}

func isSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

func writeCSVFile(path string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating export dir")
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // path comes from the user
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}

	if err := WriteCSV(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing export file")
}

func writeSQLiteFile(path string, expenses []model.Expense) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	if err := db.ReplaceAll(expenses); err != nil {
		_ = db.Close()
		return err
	}
	return db.Close()
}
