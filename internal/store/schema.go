package store

// schemaSQL creates the run history tables. Executed on every Open;
// all statements are idempotent.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	scenario TEXT NOT NULL DEFAULT '',

	price REAL NOT NULL,
	monthly_rent REAL NOT NULL,
	loan_share REAL NOT NULL,
	annual_rate REAL NOT NULL,
	loan_years INTEGER NOT NULL,
	mode TEXT NOT NULL,
	payments_per_year INTEGER NOT NULL,
	tax_rate REAL NOT NULL,
	project_years INTEGER NOT NULL,
	discount_rate REAL NOT NULL,

	npv REAL NOT NULL,
	initial_equity REAL NOT NULL,
	total_payments REAL NOT NULL,
	total_interest REAL NOT NULL,
	total_taxes REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`
