// Package store writes ledger snapshots to a SQLite file.
package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fintrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotExport is returned by OpenReadOnly for SQLite files without an
// expenses table.
var ErrNotExport = errors.New("not a fintrack export")

// DB is an export destination backed by SQLite.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrap(err, "creating export dir")
	}

	// Rollback journal keeps the export a single self-contained file
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "opening export db")
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating schema")
	}

	return &DB{db: db}, nil
}

// OpenReadOnly opens an existing export for reading. The file is never
// modified: no schema is created and the journal mode is left alone.
func OpenReadOnly(dbPath string) (*DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, errors.Wrap(err, "opening export db")
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, errors.Wrap(err, "opening export db")
	}

	var n int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name = 'expenses'`).Scan(&n)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "reading %s", dbPath)
	}
	if n == 0 {
		_ = db.Close()
		return nil, errors.Wrapf(ErrNotExport, "%s has no expenses table", dbPath)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// ReplaceAll overwrites the stored snapshot with the given expenses,
// keeping their order in the position column.
func (d *DB) ReplaceAll(expenses []model.Expense) error {
	tx, err := d.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM expenses"); err != nil {
		return errors.Wrap(err, "clearing expenses")
	}

	stmt, err := tx.Prepare(`INSERT INTO expenses
		(position, date, category, amount, description, exported_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "preparing insert")
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for i, e := range expenses {
		if _, err := stmt.Exec(i+1, e.Date, e.Category, e.AmountString(), e.Description, now); err != nil {
			return errors.Wrapf(err, "inserting row %d", i+1)
		}
	}

	return tx.Commit()
}

// LoadAll reads the stored expenses in position order.
func (d *DB) LoadAll() ([]model.Expense, error) {
	rows, err := d.db.Query(`SELECT date, category, amount, description
		FROM expenses ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "querying expenses")
	}
	defer func() { _ = rows.Close() }()

	var out []model.Expense
	for rows.Next() {
		var e model.Expense
		var amount string
		if err := rows.Scan(&e.Date, &e.Category, &amount, &e.Description); err != nil {
			return nil, err
		}
		e.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing amount %q", amount)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of stored expenses.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&count)
	return count, err
}
