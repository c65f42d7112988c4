// Package miner searches a combinatorial space of rule conjunctions for
// human-readable descriptions of feature-space regions that are dense in
// target rows, using beam search over cached predicates and a regularized
// Laplace accuracy score.
package miner

import (
	"github.com/YuminosukeSato/ruleminer/pkg/errors"
)

// validationFraction is the share of rows held out when pruning rules
// against a validation split.
const validationFraction = 0.30

// Config holds the mining-core parameters.
type Config struct {
	// MaxRules caps the number of conjunctions mined; zero or negative
	// means no cap (the loop still terminates once no rule improves on
	// the baseline).
	MaxRules int
	// K is the Laplace smoothing constant; higher values favour broader
	// but less accurate rules.
	K float64
	// RulePenalty is the per-predicate score penalty charged to a
	// conjunction; higher values favour shorter rules.
	RulePenalty float64
	// Beams is the number of parallel beams the search keeps.
	Beams int
	// Prune enables backward elimination of each mined conjunction
	// against a held-out validation split.
	Prune bool
}

// DefaultConfig returns the defaults the original analyzer shipped with.
func DefaultConfig() Config {
	return Config{
		MaxRules:    10,
		K:           20,
		RulePenalty: 0.01,
		Beams:       4,
		Prune:       true,
	}
}

// Validate reports the first invalid parameter.
func (c Config) Validate() error {
	if c.K < 0 {
		return errors.NewValidationError("k", "must be non-negative", c.K)
	}
	if c.RulePenalty < 0 {
		return errors.NewValidationError("rulePenalty", "must be non-negative", c.RulePenalty)
	}
	if c.Beams < 1 {
		return errors.NewValidationError("beams", "must be at least 1", c.Beams)
	}
	return nil
}
