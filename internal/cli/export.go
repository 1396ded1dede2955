package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/engine"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

// Importing this package makes the "table" and "csv" export backends
// available to engine.Tabulate. The engine itself stays free of any
// rendering dependency.
func init() {
	engine.RegisterTableWriter("table", WriteTable)
	engine.RegisterTableWriter("csv", WriteCSV)
}

var exportHeaders = []string{
	"month", "rent", "payment", "interest", "principal",
	"remaining", "tax", "pre_tax", "net",
}

// WriteTable renders the month rows as a bordered terminal table.
func WriteTable(rows []model.TableRow, w io.Writer) error {
	t := Table{Headers: exportHeaders}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.Month),
			FormatMoney(r.Rent),
			FormatMoney(r.Payment),
			FormatMoney(r.Interest),
			FormatMoney(r.Principal),
			FormatMoney(r.Remaining),
			FormatMoney(r.Tax),
			FormatMoney(r.PreTax),
			FormatMoney(r.Net),
		})
	}
	_, err := io.WriteString(w, RenderTable(t))
	return err
}

// WriteCSV writes the month rows as CSV with a header record.
func WriteCSV(rows []model.TableRow, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeaders); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	cell := func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Month),
			cell(r.Rent),
			cell(r.Payment),
			cell(r.Interest),
			cell(r.Principal),
			cell(r.Remaining),
			cell(r.Tax),
			cell(r.PreTax),
			cell(r.Net),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row %d: %w", r.Month, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
