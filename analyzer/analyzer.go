package analyzer

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/YuminosukeSato/ruleminer/classify"
	"github.com/YuminosukeSato/ruleminer/dataset"
	"github.com/YuminosukeSato/ruleminer/miner"
	mlog "github.com/YuminosukeSato/ruleminer/pkg/log"
	"github.com/YuminosukeSato/ruleminer/rule"
)

// Analyzer runs the full misclassification-mining pipeline for one
// configuration.
type Analyzer struct {
	cfg Config
	m   *miner.Miner
}

// New creates an Analyzer, validating the configuration.
func New(cfg Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := miner.New(cfg.minerConfig())
	if err != nil {
		return nil, err
	}
	return &Analyzer{cfg: cfg, m: m}, nil
}

// Result holds everything one mining session produced. All row indices
// refer to Data, the shuffled copy of the input the session ran on.
type Result struct {
	// Data is the session's working copy of the dataset.
	Data *dataset.Dataset
	// Votes counts, per row, how often each class was predicted for it
	// across all cross-validation folds and iterations.
	Votes [][]float64
	// Targets flags the rows whose true class fell below the vote cutoff.
	Targets []bool
	// TargetBits is Targets as a bit-vector.
	TargetBits *bitset.BitSet
	// Rules is the mined rule set, best scoring rule first.
	Rules *rule.Disjunction
	// Candidates is the number of candidate predicates generated.
	Candidates int
}

// Analyze runs the pipeline on ds: cross-validate the classifier built by
// factory to collect per-row vote counts, mark the rows whose true class
// fell below the cutoff as targets, generate candidate predicates, and
// mine rules covering the targets. idIndex names an identifier attribute
// to exclude from classification and rule building, or -1. ds itself is
// never modified; the session works on a shuffled copy.
func (a *Analyzer) Analyze(ctx context.Context, ds *dataset.Dataset, factory classify.Factory, idIndex int) (*Result, error) {
	start := time.Now()
	data := ds.Copy()
	data.Shuffle(rand.New(rand.NewSource(a.cfg.RandomSeed)))

	// The classifier must not see the identifier attribute, but row
	// indices are preserved so predictions line up with data.
	predData := data
	if idIndex >= 0 {
		var err error
		predData, err = dataset.RemoveColumn(data, idIndex)
		if err != nil {
			return nil, err
		}
	}

	cv := &classify.CrossValidator{
		Folds:      a.cfg.CVFolds,
		Iterations: a.cfg.ClassificationIterations,
		Seed:       a.cfg.RandomSeed,
	}
	votes, err := cv.Votes(ctx, predData, factory)
	if err != nil {
		return nil, err
	}
	targetBits, targets, err := classify.Targets(data, votes, a.cfg.Cutoff)
	if err != nil {
		return nil, err
	}
	slog.Info("marked misclassified rows",
		slog.Int(mlog.TargetsKey, int(targetBits.Count())),
		slog.Int(mlog.RowsKey, data.NumRows()))

	gen := &rule.Generator{Quantiles: a.cfg.Quantiles, UseClass: a.cfg.UseClassAttribute}
	candidates, err := gen.Generate(data, targets, idIndex)
	if err != nil {
		return nil, err
	}
	slog.Info("generated candidate rules",
		slog.Int(mlog.CandidateRulesKey, len(candidates)),
		slog.Int(mlog.AttributesKey, data.NumAttributes()))

	rules, err := a.m.Mine(ctx, data.NumRows(), targetBits, candidates)
	if err != nil {
		return nil, err
	}
	slog.Info("analysis finished",
		slog.Int(mlog.CandidateRulesKey, len(candidates)),
		slog.Int(mlog.RuleNumberKey, rules.Len()),
		slog.Int64(mlog.DurationMsKey, time.Since(start).Milliseconds()))

	return &Result{
		Data:       data,
		Votes:      votes,
		Targets:    targets,
		TargetBits: targetBits,
		Rules:      rules,
		Candidates: len(candidates),
	}, nil
}
