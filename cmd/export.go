package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/engine"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the per-month table",
	Long: "Exports the month-by-month detail table (rent, payment, interest,\n" +
		"principal, tax, net). Row 0 carries the initial equity outlay.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "csv", "Export format")
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	p, scenario, err := buildProject()
	if err != nil {
		return err
	}

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := p.Tabulate(flagExportFormat, out); err != nil {
		if errors.Is(err, engine.ErrUnavailableFeature) {
			return fmt.Errorf("export unavailable: no backend for %q (available: %s)",
				flagExportFormat, strings.Join(engine.TableFormats(), ", "))
		}
		return err
	}

	if flagExportOut != "" && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", flagExportOut)
	}

	recordRun(p, scenario)
	return nil
}
