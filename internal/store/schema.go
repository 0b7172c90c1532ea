package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    position     INTEGER PRIMARY KEY,
    date         TEXT NOT NULL,
    category     TEXT NOT NULL,
    amount       TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    exported_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
`
