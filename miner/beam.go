package miner

import (
	"container/heap"
	"context"

	"github.com/YuminosukeSato/ruleminer/pkg/errors"
	"github.com/YuminosukeSato/ruleminer/rule"
)

// ruleEval is one node of the backward-linked chain beam search grows: the
// predicate added last, the parent chain, the cumulative score and length,
// and, once the node survives a round, the view obtained by filtering the
// parent's view by the new predicate. Nodes are immutable after scoring;
// links only ever point toward the root.
type ruleEval struct {
	rule   rule.Rule
	prev   *ruleEval // nil at the empty-conjunction root
	score  float64
	length int
	// covered is lazily precomputed; nil means the node was created this
	// round and has not been expanded yet.
	covered *rule.View
}

// conjunction reconstructs the ordered conjunction the chain represents by
// walking parent links back to the root and reversing.
func (re *ruleEval) conjunction(n int) *rule.Conjunction {
	c := rule.NewConjunction(n)
	for node := re; node.prev != nil; node = node.prev {
		c.Add(node.rule)
	}
	c.Reverse()
	return c
}

// evalHeap is a bounded min-heap over chain scores: the root is the worst
// of the current top-B extensions, so a candidate only displaces it when
// it scores strictly higher.
type evalHeap []*ruleEval

func (h evalHeap) Len() int            { return len(h) }
func (h evalHeap) Less(i, j int) bool  { return h[i].score < h[j].score }
func (h evalHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *evalHeap) Push(x interface{}) { *h = append(*h, x.(*ruleEval)) }
func (h *evalHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// searchBeams finds the best-scoring conjunction of candidate rules
// reachable by iterative beam expansion from the empty rule. Each beam's
// extensions are evaluated against that beam's precomputed filtered view,
// which keeps every extension O(N) regardless of chain depth. A beam is
// done once its node already carries a precomputed view, meaning it
// survived a previous round and was fully expanded then. Ties between
// equal scores fall wherever the heap order puts them; with a fixed
// candidate order the search is deterministic for a given input.
func (m *Miner) searchBeams(ctx context.Context, view *rule.View, candidates []rule.Rule, baseline float64) (*rule.Conjunction, error) {
	n := view.Len()
	empty := rule.True(n)

	beams := make([]*ruleEval, m.cfg.Beams)
	done := make([]bool, m.cfg.Beams)
	best := make(evalHeap, 0, m.cfg.Beams)

	root := &ruleEval{
		rule:    empty,
		score:   m.scorer.Score(empty, 0, view, baseline),
		covered: view.Copy(),
	}
	for i := range beams {
		beams[i] = root
		done[i] = i != 0 // one live beam is enough at the shared root
		heap.Push(&best, root)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "beam search cancelled")
		}

		// Score every candidate as an extension of each live beam,
		// keeping the globally top-B chains seen so far.
		for k := range beams {
			if done[k] {
				continue
			}
			node := beams[k]
			for _, cand := range candidates {
				score := m.scorer.scoreCounts(node.covered.EvaluateRule(cand), node.length+1, baseline)
				if score > best[0].score {
					heap.Pop(&best)
					heap.Push(&best, &ruleEval{
						rule:   cand,
						prev:   node,
						score:  score,
						length: node.length + 1,
					})
				}
			}
		}
		copy(beams, best)

		// Precompute the view of every freshly added chain; chains that
		// already have one were fully explored in an earlier round.
		allDone := true
		for j, node := range beams {
			if node.covered == nil {
				node.covered = node.prev.covered.Copy()
				node.covered.FilterByRule(node.rule)
				done[j] = false
				allDone = false
			} else {
				done[j] = true
			}
		}
		if allDone {
			break
		}
	}

	top := beams[0]
	for _, node := range beams[1:] {
		if node.score > top.score {
			top = node
		}
	}
	return top.conjunction(n), nil
}
