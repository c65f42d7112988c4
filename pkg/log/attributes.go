// Package log defines standard attribute keys for rule-mining operations.
//
// Using these keys consistently keeps the mining pipeline's logs easy to
// filter: one session emits events from cross-validation, rule generation
// and the mining loop, and the keys below tie them together.
package log

// Data shape
const (
	// RowsKey is the number of rows in the dataset being mined.
	RowsKey = "data.rows"

	// AttributesKey is the number of attributes in the dataset.
	AttributesKey = "data.attributes"

	// TargetsKey is the number of rows currently flagged as targets.
	TargetsKey = "data.targets"
)

// Cross-validation progress
const (
	// FoldKey is the 1-based fold currently being built and evaluated.
	FoldKey = "cv.fold"

	// FoldsKey is the total number of cross-validation folds.
	FoldsKey = "cv.folds"

	// IterationKey is the 1-based classification iteration.
	IterationKey = "cv.iteration"

	// IterationsKey is the total number of classification iterations.
	IterationsKey = "cv.iterations"
)

// Mining progress
const (
	// CandidateRulesKey is the number of generated candidate predicates.
	CandidateRulesKey = "mine.candidates"

	// RuleNumberKey is the ordinal of a rule accepted by the mining loop.
	RuleNumberKey = "mine.rule_number"

	// RuleKey is the human-readable description of a rule.
	RuleKey = "mine.rule"

	// ScoreKey is the regularized Laplace accuracy of a rule.
	ScoreKey = "mine.score"

	// BeamRoundKey is the beam-search expansion round.
	BeamRoundKey = "mine.beam_round"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
