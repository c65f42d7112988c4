// Package analyzer ties the pipeline together: cross-validate a
// classifier to find the rows it struggles with, generate candidate
// predicates over the dataset, and mine rule conjunctions describing the
// feature-space regions where those rows concentrate.
package analyzer

import (
	"github.com/YuminosukeSato/ruleminer/miner"
	"github.com/YuminosukeSato/ruleminer/pkg/errors"
)

// Config is the full configuration surface of a mining session.
type Config struct {
	// CVFolds is the number of cross-validation folds used to generate
	// predictions.
	CVFolds int
	// ClassificationIterations is how many times the classifier is
	// rebuilt and the vote counts averaged.
	ClassificationIterations int
	// Cutoff is the fraction of votes the true class must reach for a
	// row not to be considered a target; in (0, 1].
	Cutoff float64
	// MaxRules caps the mined rule count; zero or negative is unlimited.
	MaxRules int
	// K is the Laplace smoothing constant.
	K float64
	// RulePenalty is the per-predicate regularization weight.
	RulePenalty float64
	// Beams is the beam-search width.
	Beams int
	// Quantiles is the numeric binning level; zero or negative emits
	// every useful split point instead.
	Quantiles int
	// UseClassAttribute includes the class attribute in rule building,
	// which generally finds better rules.
	UseClassAttribute bool
	// Prune shortens each mined rule against a held-out validation set.
	Prune bool
	// RandomSeed drives all shuffling in the session.
	RandomSeed int64
}

// DefaultConfig returns the defaults the original analyzer shipped with.
func DefaultConfig() Config {
	return Config{
		CVFolds:                  4,
		ClassificationIterations: 1,
		Cutoff:                   0.80,
		MaxRules:                 10,
		K:                        20,
		RulePenalty:              0.01,
		Beams:                    4,
		Quantiles:                20,
		UseClassAttribute:        true,
		Prune:                    true,
	}
}

// Validate reports the first invalid parameter.
func (c Config) Validate() error {
	if c.CVFolds < 2 {
		return errors.NewValidationError("cvFolds", "must be at least 2", c.CVFolds)
	}
	if c.ClassificationIterations < 1 {
		return errors.NewValidationError("classificationIterations", "must be at least 1", c.ClassificationIterations)
	}
	if c.Cutoff <= 0 || c.Cutoff > 1 {
		return errors.NewValidationError("cutoff", "must be in (0, 1]", c.Cutoff)
	}
	return c.minerConfig().Validate()
}

func (c Config) minerConfig() miner.Config {
	return miner.Config{
		MaxRules:    c.MaxRules,
		K:           c.K,
		RulePenalty: c.RulePenalty,
		Beams:       c.Beams,
		Prune:       c.Prune,
	}
}
