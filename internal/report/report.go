// Package report writes pricing results to disk: a JSON summary plus CSV
// views of the convergence series and the two lattices. The CSV lattice
// rendering leaves cells above the diagonal blank, never zero, since those
// cells are not nodes.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contactkeval/option-lattice/internal/engine"
	"github.com/contactkeval/option-lattice/internal/pricing"
)

// WriteAll writes every report artifact into outdir, creating it if needed.
func WriteAll(res *engine.Result, outdir string) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}
	if err := WriteJSON(res, outdir); err != nil {
		return err
	}
	if err := WriteConvergenceCSV(res, outdir); err != nil {
		return err
	}
	if err := WriteLatticeCSV(res.Valuation.Prices, filepath.Join(outdir, "prices.csv")); err != nil {
		return err
	}
	return WriteLatticeCSV(res.Valuation.Values, filepath.Join(outdir, "values.csv"))
}

// WriteJSON dumps the full result, lattices included, as indented JSON.
func WriteJSON(res *engine.Result, outdir string) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "result.json"), b, 0644)
}

// WriteConvergenceCSV writes the step-by-step CRR values next to the
// Black-Scholes reference and the absolute error.
func WriteConvergenceCSV(res *engine.Result, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "convergence.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"steps", "crr_value", "reference", "abs_error"}); err != nil {
		return err
	}
	for _, pt := range res.Convergence {
		diff := pt.Value - res.Reference
		if diff < 0 {
			diff = -diff
		}
		row := []string{
			fmt.Sprintf("%d", pt.Steps),
			fmt.Sprintf("%.6f", pt.Value),
			fmt.Sprintf("%.6f", res.Reference),
			fmt.Sprintf("%.6f", diff),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteLatticeCSV writes one triangular grid, row j per line, columns t.
func WriteLatticeCSV(l pricing.Lattice, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	steps := l.Steps()
	for j := 0; j <= steps; j++ {
		row := make([]string, 0, steps+1)
		for t := 0; t <= steps; t++ {
			if v, ok := l.Node(j, t); ok {
				row = append(row, fmt.Sprintf("%.4f", v))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
