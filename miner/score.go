package miner

import (
	"github.com/YuminosukeSato/ruleminer/rule"
)

// Scorer evaluates rules with regularized Laplace accuracy: the accuracy
// of a rule on a view, shrunk toward the view's baseline target rate by
// the smoothing constant K, minus a linear penalty per predicate in the
// conjunction. Short rules covering few rows are pulled toward the
// baseline instead of producing spuriously extreme ratios.
type Scorer struct {
	K       float64
	Penalty float64
}

// Baseline returns the target rate of the view, the value rule scores are
// shrunk toward.
func (s Scorer) Baseline(v *rule.View) float64 {
	size := v.Size()
	if size == 0 {
		return 0
	}
	return float64(v.Targets()) / float64(size)
}

// Score evaluates r against the view. ruleLength is the number of
// predicates in the conjunction r represents. The denominator is at least
// K, so a positive K makes division by zero impossible.
func (s Scorer) Score(r rule.Rule, ruleLength int, v *rule.View, baseline float64) float64 {
	return s.scoreCounts(v.EvaluateRule(r), ruleLength, baseline)
}

func (s Scorer) scoreCounts(ev rule.Evaluation, ruleLength int, baseline float64) float64 {
	return (float64(ev.TargetsCovered)+s.K*baseline)/(float64(ev.Covered)+s.K) -
		float64(ruleLength)*s.Penalty
}

// ScoreConjunction evaluates a conjunction using its own length.
func (s Scorer) ScoreConjunction(c *rule.Conjunction, v *rule.View, baseline float64) float64 {
	return s.Score(c, c.Len(), v, baseline)
}
