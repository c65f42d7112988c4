package classify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/ruleminer/core/parallel"
	"github.com/YuminosukeSato/ruleminer/dataset"
	"github.com/YuminosukeSato/ruleminer/pkg/errors"
	mlog "github.com/YuminosukeSato/ruleminer/pkg/log"
)

// CrossValidator repeatedly cross-validates a classifier and accumulates,
// for every row, how often each class was predicted for it.
type CrossValidator struct {
	// Folds is the number of cross-validation folds per iteration.
	Folds int
	// Iterations is how many times the whole cross-validation is
	// repeated with reshuffled folds; more iterations smooth the vote
	// counts.
	Iterations int
	// Seed drives the fold shuffling; a fixed seed makes the vote
	// counts reproducible for a deterministic classifier.
	Seed int64
}

// Validate reports the first invalid parameter.
func (cv *CrossValidator) Validate() error {
	if cv.Folds < 2 {
		return errors.NewValidationError("cvFolds", "must be at least 2", cv.Folds)
	}
	if cv.Iterations < 1 {
		return errors.NewValidationError("classificationIterations", "must be at least 1", cv.Iterations)
	}
	return nil
}

// Votes returns, for every row of ds, a per-class count of how often the
// classifier predicted that class for the row across all folds and
// iterations. Every row is predicted exactly once per iteration, by a
// classifier that never saw it during training. Folds within an iteration
// are independent units of work and run on the worker pool; each gets its
// own classifier from factory and writes votes for its own disjoint set
// of rows. A failing fold aborts the whole run: without valid predictions
// for every row the target labels would be unusable.
func (cv *CrossValidator) Votes(ctx context.Context, ds *dataset.Dataset, factory Factory) ([][]float64, error) {
	if err := cv.Validate(); err != nil {
		return nil, err
	}
	classAtt, err := ds.ClassAttribute()
	if err != nil {
		return nil, err
	}
	if !classAtt.IsNominal() {
		return nil, errors.NewValueError("classify.Votes",
			fmt.Sprintf("class attribute %q must be nominal to count class votes", classAtt.Name))
	}

	n := ds.NumRows()
	numClasses := classAtt.NumValues()
	votes := make([][]float64, n)
	for i := range votes {
		votes[i] = make([]float64, numClasses)
	}

	for iteration := 0; iteration < cv.Iterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "cross-validation cancelled")
		}

		kf := dataset.NewKFold(cv.Folds, true, cv.Seed+int64(iteration))
		folds, err := kf.Split(n)
		if err != nil {
			return nil, err
		}

		slog.Info("cross-validating classifier",
			slog.Int(mlog.IterationKey, iteration+1),
			slog.Int(mlog.IterationsKey, cv.Iterations),
			slog.Int(mlog.FoldsKey, cv.Folds))

		err = parallel.ForEach(len(folds), func(f int) error {
			clf := factory()
			if err := clf.Fit(ds.Subset(folds[f].TrainIndices)); err != nil {
				return errors.Wrapf(err, "building classifier for fold %d of %d", f+1, cv.Folds)
			}
			for _, idx := range folds[f].TestIndices {
				pred, err := clf.Predict(ds, idx)
				if err != nil {
					return errors.Wrapf(err, "classifying row %d in fold %d", idx, f+1)
				}
				class := int(pred)
				if class < 0 || class >= numClasses {
					return errors.NewValueError("classify.Votes",
						fmt.Sprintf("prediction %v for row %d is not a class index", pred, idx))
				}
				votes[idx][class]++
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return votes, nil
}

// Targets derives the boolean target marker from vote counts: a row is a
// target iff the fraction of votes for its true class falls below cutoff.
// Returns the marker both as a bitset (for views) and as flags (for rule
// generation).
func Targets(ds *dataset.Dataset, votes [][]float64, cutoff float64) (*bitset.BitSet, []bool, error) {
	if cutoff <= 0 || cutoff > 1 {
		return nil, nil, errors.NewValidationError("cutoff", "must be in (0, 1]", cutoff)
	}
	if len(votes) != ds.NumRows() {
		return nil, nil, errors.NewDimensionError("classify.Targets", ds.NumRows(), len(votes), 0)
	}
	if ds.ClassIndex() < 0 {
		return nil, nil, errors.NewValueError("classify.Targets", "dataset has no class attribute")
	}

	n := ds.NumRows()
	marks := bitset.New(uint(n))
	flags := make([]bool, n)
	for i := 0; i < n; i++ {
		total := floats.Sum(votes[i])
		if total == 0 {
			continue
		}
		if votes[i][int(ds.ClassValue(i))]/total < cutoff {
			flags[i] = true
			marks.Set(uint(i))
		}
	}
	return marks, flags, nil
}
