package miner

import (
	"context"
	"log/slog"
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/YuminosukeSato/ruleminer/pkg/errors"
	mlog "github.com/YuminosukeSato/ruleminer/pkg/log"
	"github.com/YuminosukeSato/ruleminer/rule"
)

// Miner repeatedly runs beam search to build a rule set covering the
// target rows of a dataset.
type Miner struct {
	cfg    Config
	scorer Scorer
}

// New creates a Miner, validating the configuration.
func New(cfg Config) (*Miner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Miner{cfg: cfg, scorer: Scorer{K: cfg.K, Penalty: cfg.RulePenalty}}, nil
}

// Mine finds a set of rule conjunctions describing feature-space regions
// dense in targets. numRows is the dataset size, targets flags the rows
// of interest, candidates is the generated predicate list. Each iteration
// beam-searches the not-yet-explained targets, optionally prunes the
// found conjunction against a held-out validation split, and subtracts
// the covered targets; the loop stops when no targets remain, the rule
// cap is reached, or the search returns an empty (no-improvement)
// conjunction. The final disjunction is ordered by descending score
// against the full view, so the ordering reflects global rule quality
// rather than the shrinking views mining used.
func (m *Miner) Mine(ctx context.Context, numRows int, targets *bitset.BitSet, candidates []rule.Rule) (*rule.Disjunction, error) {
	var trainView, validationView *rule.View
	if m.cfg.Prune {
		var err error
		trainView, validationView, err = splitViews(numRows, targets)
		if err != nil {
			return nil, err
		}
	} else {
		trainView = rule.NewRangeView(targets, numRows, 0, numRows)
	}

	ruleSet := rule.NewDisjunction(numRows)
	validationBaseline := 0.0
	if validationView != nil {
		validationBaseline = m.scorer.Baseline(validationView)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		trainBaseline := m.scorer.Baseline(trainView)
		conj, err := m.searchBeams(ctx, trainView, candidates, trainBaseline)
		if err != nil {
			return nil, err
		}
		if m.cfg.Prune {
			m.pruneRule(validationView, conj, validationBaseline)
		}
		if conj.Len() == 0 {
			break
		}
		ruleSet.Add(conj)
		slog.Info("found rule",
			slog.Int(mlog.RuleNumberKey, ruleSet.Len()),
			slog.String(mlog.RuleKey, conj.String()),
			slog.Int(mlog.TargetsKey, trainView.Targets()))
		trainView.RemoveCoveredTargets(conj)

		if trainView.Targets() == 0 || (m.cfg.MaxRules > 0 && ruleSet.Len() >= m.cfg.MaxRules) {
			break
		}
	}

	return m.sortRules(ruleSet, rule.NewRangeView(targets, numRows, 0, numRows)), nil
}

// splitViews reserves the first validationFraction of rows for pruning
// and trains on the rest. The caller is expected to have shuffled the
// dataset, so a contiguous prefix is a random sample.
func splitViews(numRows int, targets *bitset.BitSet) (train, validation *rule.View, err error) {
	validationSize := int(float64(numRows) * validationFraction)
	if validationSize == 0 {
		return nil, nil, errors.NewDataSplitError("miner.Mine", "validation", numRows, validationFraction)
	}
	if validationSize == numRows {
		return nil, nil, errors.NewDataSplitError("miner.Mine", "train", numRows, validationFraction)
	}
	validation = rule.NewRangeView(targets, numRows, 0, validationSize)
	train = rule.NewRangeView(targets, numRows, validationSize, numRows)
	return train, validation, nil
}

// sortRules returns the disjunction reordered by descending score on the
// given view. The sort is stable, so equally scored rules keep discovery
// order.
func (m *Miner) sortRules(ruleSet *rule.Disjunction, view *rule.View) *rule.Disjunction {
	baseline := m.scorer.Baseline(view)
	conjs := make([]*rule.Conjunction, ruleSet.Len())
	copy(conjs, ruleSet.Rules())
	sort.SliceStable(conjs, func(i, j int) bool {
		return m.scorer.ScoreConjunction(conjs[i], view, baseline) >
			m.scorer.ScoreConjunction(conjs[j], view, baseline)
	})
	sorted := rule.NewDisjunction(view.Len())
	for _, c := range conjs {
		sorted.Add(c)
	}
	return sorted
}
