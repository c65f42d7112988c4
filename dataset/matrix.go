package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ruleminer/pkg/errors"
)

// FromMatrix builds a Dataset of numeric attributes from a gonum matrix.
// names may be nil, in which case columns are named att0..attN-1. The
// returned dataset has no class attribute.
func FromMatrix(X mat.Matrix, names []string) (*Dataset, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewDimensionError("dataset.FromMatrix", 1, 0, 0)
	}
	if names != nil && len(names) != c {
		return nil, errors.NewDimensionError("dataset.FromMatrix", c, len(names), 1)
	}
	attrs := make([]Attribute, c)
	for j := 0; j < c; j++ {
		name := fmt.Sprintf("att%d", j)
		if names != nil {
			name = names[j]
		}
		attrs[j] = Attribute{Name: name, Kind: Numeric}
	}
	ds := &Dataset{attrs: attrs, classIndex: -1}
	ds.rows = make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			row[j] = X.At(i, j)
		}
		ds.rows[i] = row
	}
	return ds, nil
}

// WithClass appends y as a nominal class attribute with the given value
// names and returns a new dataset with the class index set to the new
// column. y values must be valid indices into values.
func (d *Dataset) WithClass(y []float64, name string, values []string) (*Dataset, error) {
	if len(y) != len(d.rows) {
		return nil, errors.NewDimensionError("dataset.WithClass", len(d.rows), len(y), 0)
	}
	attrs := make([]Attribute, len(d.attrs), len(d.attrs)+1)
	copy(attrs, d.attrs)
	attrs = append(attrs, Attribute{Name: name, Kind: Nominal, Values: values})
	out := &Dataset{attrs: attrs, classIndex: len(attrs) - 1}
	out.rows = make([][]float64, len(d.rows))
	for i, r := range d.rows {
		if int(y[i]) < 0 || int(y[i]) >= len(values) {
			return nil, errors.NewValueError("dataset.WithClass",
				fmt.Sprintf("class value %v of row %d is not an index into the %d declared values", y[i], i, len(values)))
		}
		row := make([]float64, 0, len(attrs))
		row = append(row, r...)
		row = append(row, y[i])
		out.rows[i] = row
	}
	return out, nil
}
