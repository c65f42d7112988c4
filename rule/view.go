package rule

import (
	"github.com/bits-and-blooms/bitset"
)

// View is a mutable working subset of dataset rows paired with a fixed
// set of target rows. The covered set shrinks as mining progresses; the
// target set is shared by reference and never mutated through a view.
type View struct {
	targets *bitset.BitSet
	covered *bitset.BitSet
	n       uint
}

// Evaluation is the result of evaluating a rule against a view.
type Evaluation struct {
	// Covered is the number of view rows the rule covers.
	Covered int
	// TargetsCovered is how many of those rows are targets.
	TargetsCovered int
}

// NewView creates a view over n rows from a target bit-vector and an
// explicit covered bit-vector. The covered set is owned by the view;
// targets are shared.
func NewView(targets, covered *bitset.BitSet, n int) *View {
	return &View{targets: targets, covered: covered, n: uint(n)}
}

// NewRangeView creates a view over n rows covering the contiguous index
// range [start, stop).
func NewRangeView(targets *bitset.BitSet, n, start, stop int) *View {
	covered := bitset.New(uint(n))
	if start < stop {
		covered.FlipRange(uint(start), uint(stop))
	}
	return &View{targets: targets, covered: covered, n: uint(n)}
}

// FilterByRule removes all rows not covered by the rule. The covered set
// only ever shrinks.
func (v *View) FilterByRule(r Rule) {
	v.covered.InPlaceIntersection(r.Covered())
}

// RemoveCoveredTargets removes the rows that are both targets and covered
// by the rule. The mining loop uses this to mark targets explained by an
// accepted rule so later iterations search the remainder.
func (v *View) RemoveCoveredTargets(r Rule) {
	coveredTargets := v.targets.Clone()
	coveredTargets.InPlaceIntersection(r.Covered())
	v.covered.InPlaceDifference(coveredTargets)
}

// EvaluateRule counts the rows and targets the rule covers within the
// view without mutating it.
func (v *View) EvaluateRule(r Rule) Evaluation {
	cut := v.covered.Clone()
	cut.InPlaceIntersection(r.Covered())
	covered := int(cut.Count())
	cut.InPlaceIntersection(v.targets)
	return Evaluation{Covered: covered, TargetsCovered: int(cut.Count())}
}

// Targets returns the number of targets the view includes.
func (v *View) Targets() int {
	cut := v.targets.Clone()
	cut.InPlaceIntersection(v.covered)
	return int(cut.Count())
}

// Size returns the number of rows the view includes.
func (v *View) Size() int {
	return int(v.covered.Count())
}

// Len returns the number of rows in the underlying dataset.
func (v *View) Len() int {
	return int(v.n)
}

// Copy returns a view with an independent covered set and the same shared
// target reference.
func (v *View) Copy() *View {
	return &View{targets: v.targets, covered: v.covered.Clone(), n: v.n}
}
