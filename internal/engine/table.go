package engine

import (
	"fmt"
	"io"
	"sort"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

// A TableWriter renders table rows to w. Rendering backends register
// themselves by format name; the engine itself carries none, so a
// Project is table-exportable only when a consumer has linked one in.
type TableWriter func(rows []model.TableRow, w io.Writer) error

var tableWriters = map[string]TableWriter{}

// RegisterTableWriter installs a rendering backend for Tabulate.
// Typically called from an init function in the rendering package.
func RegisterTableWriter(format string, fn TableWriter) {
	tableWriters[format] = fn
}

// TableFormats lists the registered export formats, sorted.
func TableFormats() []string {
	formats := make([]string, 0, len(tableWriters))
	for f := range tableWriters {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Table returns the display-oriented month rows. Row 0 carries the
// initial equity outlay and the opening balance; rows 1..n mirror the
// cash-flow series.
func (p *Project) Table() []model.TableRow {
	rows := make([]model.TableRow, 0, len(p.months)+1)
	rows = append(rows, model.TableRow{
		Month:     0,
		Remaining: p.FinancedAmount(),
		Net:       -p.InitialEquity(),
	})
	for _, m := range p.months {
		rows = append(rows, model.TableRow{
			Month:     m.Month,
			Rent:      m.Rent,
			Payment:   m.Payment,
			Interest:  m.Interest,
			Principal: m.Principal,
			Remaining: m.Remaining,
			Tax:       m.Tax,
			PreTax:    m.Operating,
			Net:       m.Net,
		})
	}
	return rows
}

// CanTabulate reports whether a rendering backend is registered for
// the format.
func (p *Project) CanTabulate(format string) bool {
	_, ok := tableWriters[format]
	return ok
}

// Tabulate renders the table in the given format. A format with no
// registered backend reports ErrUnavailableFeature; the Project stays
// fully usable either way.
func (p *Project) Tabulate(format string, w io.Writer) error {
	fn, ok := tableWriters[format]
	if !ok {
		return fmt.Errorf("%w: no table backend registered for format %q", ErrUnavailableFeature, format)
	}
	return fn(p.Table(), w)
}
