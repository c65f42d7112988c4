package miner

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/ruleminer/rule"
)

// RuleReport summarizes how well a rule fits a view: rows covered,
// targets covered, raw accuracy, and the internal regularized score.
func (m *Miner) RuleReport(r rule.Rule, ruleLength int, view *rule.View) string {
	ev := view.EvaluateRule(r)
	accuracy := 0.0
	if ev.Covered > 0 {
		accuracy = float64(ev.TargetsCovered) / float64(ev.Covered)
	}
	return fmt.Sprintf("Covered: %d\tTargets: %d\tAccuracy: %.3f\tScored: %.3f",
		ev.Covered, ev.TargetsCovered, accuracy,
		m.scorer.Score(r, ruleLength, view, m.scorer.Baseline(view)))
}

// RuleBreakdown reports a conjunction clause by clause: starting from the
// empty rule's baseline stats, each predicate is added in order with the
// stats of the growing conjunction after it.
func (m *Miner) RuleBreakdown(conj *rule.Conjunction, view *rule.View) string {
	var sb strings.Builder
	n := view.Len()
	empty := rule.True(n)
	fmt.Fprintf(&sb, "Baseline (empty rule):\nStats: %s\n\n", m.RuleReport(empty, 0, view))
	partial := rule.NewConjunction(n)
	for _, clause := range conj.Rules() {
		partial.Add(clause)
		fmt.Fprintf(&sb, "Added: %s\n", clause.String())
		fmt.Fprintf(&sb, "New stats: %s\n\n", m.RuleReport(partial, partial.Len(), view))
	}
	return sb.String()
}
