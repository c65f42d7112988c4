// Package metrics computes evaluation summaries for cross-validated
// classification results, keyed by the per-class vote counts the analyzer
// produces.
package metrics

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/ruleminer/dataset"
	"github.com/YuminosukeSato/ruleminer/pkg/errors"
)

// ConfusionMatrix builds a matrix where entry [i][j] counts the rows with
// true class i whose majority vote was class j. rows restricts the count
// to the given row indices; pass nil for all rows.
func ConfusionMatrix(ds *dataset.Dataset, votes [][]float64, rows []int) ([][]float64, error) {
	classAtt, err := ds.ClassAttribute()
	if err != nil {
		return nil, err
	}
	if !classAtt.IsNominal() {
		return nil, errors.NewValueError("metrics.ConfusionMatrix",
			fmt.Sprintf("class attribute %q must be nominal", classAtt.Name))
	}
	if len(votes) != ds.NumRows() {
		return nil, errors.NewDimensionError("metrics.ConfusionMatrix", ds.NumRows(), len(votes), 0)
	}

	k := classAtt.NumValues()
	matrix := make([][]float64, k)
	for i := range matrix {
		matrix[i] = make([]float64, k)
	}
	if rows == nil {
		rows = make([]int, ds.NumRows())
		for i := range rows {
			rows[i] = i
		}
	}
	for _, i := range rows {
		predicted := floats.MaxIdx(votes[i])
		matrix[int(ds.ClassValue(i))][predicted]++
	}
	return matrix, nil
}

// FormatSquareMatrix renders a square matrix with the given labels on
// both rows and columns, columns aligned, long labels truncated.
func FormatSquareMatrix(labels []string, values [][]float64) string {
	const (
		minWidth = 1
		maxWidth = 12
		pad      = 2
	)

	cells := make([][]string, len(values)+1)
	cells[0] = append([]string{""}, labels...)
	for i, row := range values {
		cells[i+1] = make([]string, len(row)+1)
		cells[i+1][0] = labels[i]
		for j, v := range row {
			if v == float64(int(v)) {
				cells[i+1][j+1] = fmt.Sprintf("%d", int(v))
			} else {
				cells[i+1][j+1] = fmt.Sprintf("%.3f", v)
			}
		}
	}

	// Column widths, bounded so one long label cannot blow up the table.
	widths := make([]int, len(cells[0]))
	for _, row := range cells {
		for j, cell := range row {
			if len(cell) > maxWidth {
				cell = cell[:maxWidth-1] + "."
				row[j] = cell
			}
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
			if widths[j] < minWidth {
				widths[j] = minWidth
			}
		}
	}

	var sb strings.Builder
	for _, row := range cells {
		for j, cell := range row {
			fmt.Fprintf(&sb, "%-*s%s", widths[j], cell, strings.Repeat(" ", pad))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
