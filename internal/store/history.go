// Package store provides a SQLite-backed history of computed runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Run is one recorded computation: the parameters that went in and the
// headline results that came out.
type Run struct {
	ID        int64
	CreatedAt time.Time
	Scenario  string

	Params  model.ProjectParams
	Summary model.Summary
}

// History provides SQLite-backed run recording.
type History struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant history database path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "rendita", "history.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "rendita", "history.db")
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveRun records a computed run and returns its id.
func (h *History) SaveRun(r Run) (int64, error) {
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := h.db.Exec(`INSERT INTO runs
		(created_at, scenario,
		 price, monthly_rent, loan_share, annual_rate, loan_years,
		 mode, payments_per_year, tax_rate, project_years, discount_rate,
		 npv, initial_equity, total_payments, total_interest, total_taxes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		createdAt.UTC().Format(time.RFC3339), r.Scenario,
		r.Params.Price, r.Params.MonthlyRent, r.Params.LoanShare,
		r.Params.AnnualRate, r.Params.LoanTermYears,
		string(r.Params.Mode), r.Params.PaymentsPerYear, r.Params.TaxRate,
		r.Params.ProjectTermYears, r.Params.DiscountRate,
		r.Summary.NPV, r.Summary.InitialEquity, r.Summary.TotalPayments,
		r.Summary.TotalInterest, r.Summary.TotalTaxes,
	)
	if err != nil {
		return 0, fmt.Errorf("saving run: %w", err)
	}
	return res.LastInsertId()
}

// RecentRuns returns the most recent runs, newest first.
func (h *History) RecentRuns(limit int) ([]Run, error) {
	rows, err := h.db.Query(`SELECT
		id, created_at, scenario,
		price, monthly_rent, loan_share, annual_rate, loan_years,
		mode, payments_per_year, tax_rate, project_years, discount_rate,
		npv, initial_equity, total_payments, total_interest, total_taxes
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdStr, mode string

		err := rows.Scan(
			&r.ID, &createdStr, &r.Scenario,
			&r.Params.Price, &r.Params.MonthlyRent, &r.Params.LoanShare,
			&r.Params.AnnualRate, &r.Params.LoanTermYears,
			&mode, &r.Params.PaymentsPerYear, &r.Params.TaxRate,
			&r.Params.ProjectTermYears, &r.Params.DiscountRate,
			&r.Summary.NPV, &r.Summary.InitialEquity, &r.Summary.TotalPayments,
			&r.Summary.TotalInterest, &r.Summary.TotalTaxes,
		)
		if err != nil {
			return nil, err
		}

		r.Params.Mode = model.Mode(mode)
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunCount returns the number of recorded runs.
func (h *History) RunCount() (int, error) {
	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count)
	return count, err
}
