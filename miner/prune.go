package miner

import (
	"github.com/YuminosukeSato/ruleminer/rule"
)

// pruneRule greedily shortens a conjunction by backward elimination
// against a validation view: each round tries removing every predicate in
// turn, accepts the single removal that does not drop the score below the
// running best, and repeats until no removal helps or the conjunction is
// empty. Worst case O(length^2) rule evaluations.
func (m *Miner) pruneRule(view *rule.View, conj *rule.Conjunction, baseline float64) {
	bestScore := m.scorer.ScoreConjunction(conj, view, baseline)
	for {
		bestRemove := -1
		for i := 0; i < conj.Len(); i++ {
			removed := conj.Remove(i)
			score := m.scorer.ScoreConjunction(conj, view, baseline)
			if score >= bestScore {
				bestScore = score
				bestRemove = i
			}
			conj.Insert(i, removed)
		}
		if bestRemove < 0 {
			return
		}
		conj.Remove(bestRemove)
		if conj.Len() == 0 {
			return
		}
	}
}
