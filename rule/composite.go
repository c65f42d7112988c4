package rule

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Set is an ordered sequence of child rules combined by a single boolean
// operator. Its covered bit-vector is maintained incrementally: appending
// combines in O(N), removing a child triggers a full recompute. Swapping
// children never touches the bit-vector since the combination is
// order-independent.
type Set[T Rule] struct {
	modifier string
	union    bool
	rules    []T
	covered  *bitset.BitSet
	n        uint
}

// Conjunction is an AND-combination of rules. Empty conjunctions cover
// every row (the always-true rule the beam search starts from).
type Conjunction = Set[Rule]

// Disjunction is an OR-combination of conjunctions: the final mined rule
// set. Empty disjunctions cover no rows.
type Disjunction = Set[*Conjunction]

// NewConjunction creates an empty conjunction over n rows.
func NewConjunction(n int) *Conjunction {
	return newSet[Rule](n, "AND", false)
}

// NewDisjunction creates an empty disjunction over n rows.
func NewDisjunction(n int) *Disjunction {
	return newSet[*Conjunction](n, "OR", true)
}

func newSet[T Rule](n int, modifier string, union bool) *Set[T] {
	s := &Set[T]{modifier: modifier, union: union, n: uint(n)}
	s.covered = s.identity()
	return s
}

// identity returns the covered set of a childless combination: all rows
// for a conjunction, no rows for a disjunction.
func (s *Set[T]) identity() *bitset.BitSet {
	b := bitset.New(s.n)
	if !s.union {
		b.FlipRange(0, s.n)
	}
	return b
}

func (s *Set[T]) combine(other *bitset.BitSet) {
	if s.union {
		s.covered.InPlaceUnion(other)
	} else {
		s.covered.InPlaceIntersection(other)
	}
}

// Add appends a rule, combining its bit-vector in O(N).
func (s *Set[T]) Add(r T) {
	s.combine(r.Covered())
	s.rules = append(s.rules, r)
}

// Insert adds a rule at index i. The combination is order-independent, so
// the cached bit-vector is updated the same way as Add.
func (s *Set[T]) Insert(i int, r T) {
	s.combine(r.Covered())
	s.rules = append(s.rules, r) // grow
	copy(s.rules[i+1:], s.rules[i:])
	s.rules[i] = r
}

// Remove deletes and returns the rule at index i. The covered bit-vector
// is recomputed from scratch in O(children x N).
func (s *Set[T]) Remove(i int) T {
	r := s.rules[i]
	s.rules = append(s.rules[:i], s.rules[i+1:]...)
	s.recompute()
	return r
}

func (s *Set[T]) recompute() {
	s.covered = s.identity()
	for _, r := range s.rules {
		s.combine(r.Covered())
	}
}

// Swap exchanges the rules at i and j. No recompute is needed.
func (s *Set[T]) Swap(i, j int) {
	s.rules[i], s.rules[j] = s.rules[j], s.rules[i]
}

// Reverse reverses the order the rules are stored in.
func (s *Set[T]) Reverse() {
	for i, j := 0, len(s.rules)-1; i < j; i, j = i+1, j-1 {
		s.rules[i], s.rules[j] = s.rules[j], s.rules[i]
	}
}

// Len returns the number of child rules.
func (s *Set[T]) Len() int {
	return len(s.rules)
}

// At returns the rule at index i.
func (s *Set[T]) At(i int) T {
	return s.rules[i]
}

// Rules returns the children in current order. The returned slice must
// not be mutated.
func (s *Set[T]) Rules() []T {
	return s.rules
}

// Covered implements Rule.
func (s *Set[T]) Covered() *bitset.BitSet {
	return s.covered
}

// String renders the combination: "(empty)" with no children, the bare
// child description for a single child, and a parenthesized list joined
// by the operator otherwise.
func (s *Set[T]) String() string {
	if len(s.rules) == 0 {
		return "(empty)"
	}
	if len(s.rules) == 1 {
		return s.rules[0].String()
	}
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(s.rules[0].String())
	for _, r := range s.rules[1:] {
		sb.WriteString("\n\t" + s.modifier + " ")
		sb.WriteString(r.String())
	}
	sb.WriteString(")")
	return sb.String()
}
