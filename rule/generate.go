package rule

import (
	"fmt"
	"sort"

	"github.com/YuminosukeSato/ruleminer/dataset"
	"github.com/YuminosukeSato/ruleminer/pkg/errors"
)

// distinctSampleCap is how many distinct values a numeric attribute must
// show, sampled while scanning rows, before quantile binning is
// considered instead of exact split-point detection.
const distinctSampleCap = 8

// Generator builds the candidate predicate list the beam search explores,
// scanning each dataset attribute in turn.
type Generator struct {
	// Quantiles is the number of quantile bins for numeric attributes
	// with many distinct values; zero or negative disables binning and
	// every useful split point is emitted instead.
	Quantiles int
	// UseClass includes the class attribute itself in rule building.
	UseClass bool
}

// Generate scans ds and produces candidate rules: equality rules for
// categorical attributes and threshold rules for numeric ones. targets
// flags the rows of interest (used by split-point detection), idIndex
// names an identifier attribute to exclude (-1 for none).
func (g *Generator) Generate(ds *dataset.Dataset, targets []bool, idIndex int) ([]Rule, error) {
	if ds.NumRows() == 0 {
		return nil, errors.NewValueError("rule.Generate", "dataset has no rows")
	}
	if len(targets) != ds.NumRows() {
		return nil, errors.NewDimensionError("rule.Generate", ds.NumRows(), len(targets), 0)
	}
	if idIndex < -1 || idIndex >= ds.NumAttributes() {
		return nil, errors.NewValueError("rule.Generate",
			fmt.Sprintf("id attribute index %d out of range for %d attributes", idIndex, ds.NumAttributes()))
	}

	var rules []Rule
	for att := 0; att < ds.NumAttributes(); att++ {
		if att == idIndex || (!g.UseClass && att == ds.ClassIndex()) {
			continue
		}
		if ds.Attribute(att).IsNominal() {
			rules = g.nominalRules(rules, ds, att)
		} else {
			rules = g.numericRules(rules, ds, att, targets)
		}
	}
	return rules, nil
}

// nominalRules emits an equals rule per observed value, plus not-equals
// rules when more than two values occur. With exactly two values the
// not-equals rules would duplicate the sibling equals rules.
func (g *Generator) nominalRules(rules []Rule, ds *dataset.Dataset, att int) []Rule {
	observed := make([]bool, ds.Attribute(att).NumValues())
	count := 0
	for i := 0; i < ds.NumRows(); i++ {
		v := int(ds.Value(i, att))
		if v >= 0 && v < len(observed) && !observed[v] {
			observed[v] = true
			count++
		}
	}
	if count < 2 {
		return rules
	}
	for v, seen := range observed {
		if !seen {
			continue
		}
		rules = append(rules, NewLeaf(ds, att, Equals, float64(v)))
		if count > 2 {
			rules = append(rules, NewLeaf(ds, att, NotEquals, float64(v)))
		}
	}
	return rules
}

func (g *Generator) numericRules(rules []Rule, ds *dataset.Dataset, att int, targets []bool) []Rule {
	distinct := distinctUpTo(ds, att, distinctSampleCap)
	switch {
	case len(distinct) <= 1:
		return rules
	case len(distinct) <= 3:
		// Very few levels, treat the attribute as categorical.
		sort.Float64s(distinct)
		for _, v := range distinct {
			rules = append(rules, NewLeaf(ds, att, Equals, v))
			if len(distinct) > 2 {
				rules = append(rules, NewLeaf(ds, att, NotEquals, v))
			}
		}
		return rules
	case g.Quantiles > 0 && len(distinct) >= distinctSampleCap:
		return g.quantileRules(rules, ds, att)
	default:
		return g.boundaryRules(rules, ds, att, targets)
	}
}

// quantileRules walks evenly index-spaced sample points through the rows
// sorted by the attribute and emits a >= / < pair wherever the sampled
// value changes.
func (g *Generator) quantileRules(rules []Rule, ds *dataset.Dataset, att int) []Rule {
	order := ds.SortedIndices(att)
	n := len(order)
	prev := ds.Value(order[0], att)
	for q := 1; q < g.Quantiles+2; q++ {
		v := ds.Value(order[n*q/(g.Quantiles+2)], att)
		if v != prev {
			rules = append(rules,
				NewLeaf(ds, att, GreaterOrEqual, v),
				NewLeaf(ds, att, Less, v))
		}
		prev = v
	}
	return rules
}

// Purity of a run of rows sharing one attribute value.
const (
	pureTarget = iota
	pureNonTarget
	mixed
)

type valueRun struct {
	val    float64
	status int
}

// boundaryRules emits a < / >= pair at every point, scanning the rows
// sorted by attribute value, where the target purity changes between runs
// of equal value: pure-target to pure-non-target, pure to mixed, or any
// boundary touching a mixed run. Splits inside a uniform run of identical
// target labels would never help a rule and are skipped, as is the first
// run's value, where the < side would be empty.
func (g *Generator) boundaryRules(rules []Rule, ds *dataset.Dataset, att int, targets []bool) []Rule {
	order := ds.SortedIndices(att)

	var runs []valueRun
	for _, idx := range order {
		v := ds.Value(idx, att)
		status := pureNonTarget
		if targets[idx] {
			status = pureTarget
		}
		if len(runs) > 0 && runs[len(runs)-1].val == v {
			if runs[len(runs)-1].status != status {
				runs[len(runs)-1].status = mixed
			}
			continue
		}
		runs = append(runs, valueRun{val: v, status: status})
	}

	for r := 1; r < len(runs); r++ {
		prev, cur := runs[r-1].status, runs[r].status
		if prev == mixed || cur == mixed || prev != cur {
			rules = append(rules,
				NewLeaf(ds, att, Less, runs[r].val),
				NewLeaf(ds, att, GreaterOrEqual, runs[r].val))
		}
	}
	return rules
}

func distinctUpTo(ds *dataset.Dataset, att, max int) []float64 {
	seen := make(map[float64]struct{}, max)
	for i := 0; i < ds.NumRows(); i++ {
		seen[ds.Value(i, att)] = struct{}{}
		if len(seen) == max {
			break
		}
	}
	out := make([]float64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return out
}
