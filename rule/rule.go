// Package rule implements cached boolean predicates over dataset rows.
// A rule's truth value for every row is computed once and stored in a
// bit-vector, so combining and evaluating rules is bitset algebra instead
// of repeated row scans.
package rule

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/YuminosukeSato/ruleminer/dataset"
)

// Rule is a boolean predicate over the rows of an indexed dataset with
// the per-row results cached as a bit-vector.
type Rule interface {
	// Covered returns a bit-vector whose i-th bit is set iff the rule
	// holds for row i of the dataset the rule was built from. Callers
	// must treat the returned bitset as read-only and clone it before
	// mutating.
	Covered() *bitset.BitSet

	// String returns a stable human-readable description.
	String() string
}

// Op is a comparison operator of a leaf rule.
type Op int

const (
	Equals Op = iota
	NotEquals
	Less
	LessOrEqual
	Greater
	GreaterOrEqual
)

func (op Op) symbol() string {
	switch op {
	case Equals:
		return "=="
	case NotEquals:
		return "!="
	case Less:
		return "<"
	case LessOrEqual:
		return "<="
	case Greater:
		return ">"
	case GreaterOrEqual:
		return ">="
	}
	return "?"
}

func (op Op) holds(a, b float64) bool {
	switch op {
	case Equals:
		return a == b
	case NotEquals:
		return a != b
	case Less:
		return a < b
	case LessOrEqual:
		return a <= b
	case Greater:
		return a > b
	case GreaterOrEqual:
		return a >= b
	}
	return false
}

// Leaf is a rule built from a single attribute, a comparison operator and
// a comparison value.
type Leaf struct {
	covered     *bitset.BitSet
	description string
}

// NewLeaf builds a leaf rule by scanning every row of ds once. The
// description renders the comparison value as its nominal label when the
// attribute is categorical.
func NewLeaf(ds *dataset.Dataset, att int, op Op, val float64) *Leaf {
	n := ds.NumRows()
	covered := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if op.holds(ds.Value(i, att), val) {
			covered.Set(uint(i))
		}
	}
	a := ds.Attribute(att)
	return &Leaf{
		covered:     covered,
		description: fmt.Sprintf("(%s %s %s)", a.Name, op.symbol(), a.FormatValue(val)),
	}
}

// True returns the always-true rule over n rows.
func True(n int) *Leaf {
	covered := bitset.New(uint(n))
	covered.FlipRange(0, uint(n))
	return &Leaf{covered: covered, description: "true"}
}

// Covered implements Rule.
func (l *Leaf) Covered() *bitset.BitSet {
	return l.covered
}

func (l *Leaf) String() string {
	return l.description
}
