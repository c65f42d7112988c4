// Package dataset provides the tabular dataset abstraction the rule miner
// operates on: ordered rows of numeric-encoded attribute values with
// per-attribute metadata. Nominal values are stored as indices into the
// attribute's value-name table.
package dataset

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/YuminosukeSato/ruleminer/pkg/errors"
)

// Kind distinguishes numeric attributes from nominal (categorical) ones.
type Kind int

const (
	// Numeric attributes hold real values compared with <, <=, > and >=.
	Numeric Kind = iota
	// Nominal attributes hold indices into a fixed value-name table.
	Nominal
)

// Attribute describes one column of a Dataset.
type Attribute struct {
	Name string
	Kind Kind
	// Values holds the nominal value names; empty for numeric attributes.
	Values []string
}

// IsNominal reports whether the attribute is categorical.
func (a Attribute) IsNominal() bool {
	return a.Kind == Nominal
}

// NumValues returns the number of declared nominal values.
func (a Attribute) NumValues() int {
	return len(a.Values)
}

// FormatValue renders an attribute value the way it appears in rule
// descriptions: the value name for nominal attributes, a fixed-precision
// number otherwise.
func (a Attribute) FormatValue(v float64) string {
	if a.IsNominal() {
		idx := int(v)
		if idx >= 0 && idx < len(a.Values) {
			return a.Values[idx]
		}
		return fmt.Sprintf("?%d", idx)
	}
	return fmt.Sprintf("%.3f", v)
}

// Dataset is an ordered sequence of fixed-length rows. The row and
// attribute counts are fixed for the lifetime of a mining session; Append
// is only valid while the caller is still assembling the data.
type Dataset struct {
	attrs      []Attribute
	rows       [][]float64
	classIndex int
}

// New creates an empty Dataset with the given attributes. classIndex is
// the designated class attribute, or -1 when there is none.
func New(attrs []Attribute, classIndex int) (*Dataset, error) {
	if len(attrs) == 0 {
		return nil, errors.NewValueError("dataset.New", "at least one attribute is required")
	}
	if classIndex < -1 || classIndex >= len(attrs) {
		return nil, errors.NewValueError("dataset.New",
			fmt.Sprintf("class index %d out of range for %d attributes", classIndex, len(attrs)))
	}
	return &Dataset{attrs: attrs, classIndex: classIndex}, nil
}

// Append adds a row. The row length must match the attribute count.
func (d *Dataset) Append(row []float64) error {
	if len(row) != len(d.attrs) {
		return errors.NewDimensionError("dataset.Append", len(d.attrs), len(row), 1)
	}
	d.rows = append(d.rows, row)
	return nil
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// NumAttributes returns the number of attributes.
func (d *Dataset) NumAttributes() int {
	return len(d.attrs)
}

// Attribute returns the metadata of attribute j.
func (d *Dataset) Attribute(j int) Attribute {
	return d.attrs[j]
}

// Attributes returns the attribute metadata in column order. The returned
// slice must not be mutated.
func (d *Dataset) Attributes() []Attribute {
	return d.attrs
}

// Value returns the value of attribute j in row i.
func (d *Dataset) Value(i, j int) float64 {
	return d.rows[i][j]
}

// Row returns row i. The returned slice must not be mutated.
func (d *Dataset) Row(i int) []float64 {
	return d.rows[i]
}

// ClassIndex returns the class attribute index, or -1 when unset.
func (d *Dataset) ClassIndex() int {
	return d.classIndex
}

// ClassAttribute returns the class attribute metadata.
func (d *Dataset) ClassAttribute() (Attribute, error) {
	if d.classIndex < 0 {
		return Attribute{}, errors.NewValueError("dataset.ClassAttribute", "no class attribute set")
	}
	return d.attrs[d.classIndex], nil
}

// ClassValue returns the class value of row i.
func (d *Dataset) ClassValue(i int) float64 {
	return d.rows[i][d.classIndex]
}

// Copy returns a deep copy.
func (d *Dataset) Copy() *Dataset {
	rows := make([][]float64, len(d.rows))
	for i, r := range d.rows {
		cp := make([]float64, len(r))
		copy(cp, r)
		rows[i] = cp
	}
	attrs := make([]Attribute, len(d.attrs))
	copy(attrs, d.attrs)
	return &Dataset{attrs: attrs, rows: rows, classIndex: d.classIndex}
}

// Subset returns a new Dataset holding the given rows, in order. Rows are
// shared with the receiver, which is safe because mining never mutates
// row contents.
func (d *Dataset) Subset(indices []int) *Dataset {
	rows := make([][]float64, len(indices))
	for i, idx := range indices {
		rows[i] = d.rows[idx]
	}
	return &Dataset{attrs: d.attrs, rows: rows, classIndex: d.classIndex}
}

// Shuffle permutes the rows in place using rnd.
func (d *Dataset) Shuffle(rnd *rand.Rand) {
	rnd.Shuffle(len(d.rows), func(i, j int) {
		d.rows[i], d.rows[j] = d.rows[j], d.rows[i]
	})
}

// ShuffleInSync permutes the rows and the other slice with the same
// permutation, so paired entries stay at matching indices.
func (d *Dataset) ShuffleInSync(other []int, rnd *rand.Rand) error {
	if len(other) != len(d.rows) {
		return errors.NewDimensionError("dataset.ShuffleInSync", len(d.rows), len(other), 0)
	}
	rnd.Shuffle(len(d.rows), func(i, j int) {
		d.rows[i], d.rows[j] = d.rows[j], d.rows[i]
		other[i], other[j] = other[j], other[i]
	})
	return nil
}

// SortedIndices returns the row indices ordered by ascending value of
// attribute j. The sort is stable so equal values keep dataset order.
func (d *Dataset) SortedIndices(j int) []int {
	indices := make([]int, len(d.rows))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return d.rows[indices[a]][j] < d.rows[indices[b]][j]
	})
	return indices
}

// RemoveColumn returns a copy of d without column j. The class attribute
// cannot be removed; the class index is shifted when it sat after the
// removed column.
func RemoveColumn(d *Dataset, j int) (*Dataset, error) {
	if j < 0 || j >= len(d.attrs) {
		return nil, errors.NewValueError("dataset.RemoveColumn",
			fmt.Sprintf("column index %d out of range for %d attributes", j, len(d.attrs)))
	}
	if j == d.classIndex {
		return nil, errors.NewValueError("dataset.RemoveColumn", "cannot remove the class attribute")
	}
	attrs := make([]Attribute, 0, len(d.attrs)-1)
	attrs = append(attrs, d.attrs[:j]...)
	attrs = append(attrs, d.attrs[j+1:]...)
	classIndex := d.classIndex
	if classIndex > j {
		classIndex--
	}
	out := &Dataset{attrs: attrs, classIndex: classIndex}
	out.rows = make([][]float64, len(d.rows))
	for i, r := range d.rows {
		row := make([]float64, 0, len(attrs))
		row = append(row, r[:j]...)
		row = append(row, r[j+1:]...)
		out.rows[i] = row
	}
	return out, nil
}
