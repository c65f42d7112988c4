package classify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/ruleminer/dataset"
	"github.com/YuminosukeSato/ruleminer/pkg/errors"
)

// oracleClassifier predicts the true class of every row.
type oracleClassifier struct{}

func (oracleClassifier) Fit(*dataset.Dataset) error { return nil }

func (oracleClassifier) Predict(ds *dataset.Dataset, i int) (float64, error) {
	return ds.ClassValue(i), nil
}

// constantClassifier always predicts the same class.
type constantClassifier struct{ class float64 }

func (c constantClassifier) Fit(*dataset.Dataset) error { return nil }

func (c constantClassifier) Predict(*dataset.Dataset, int) (float64, error) {
	return c.class, nil
}

// brokenClassifier fails to train.
type brokenClassifier struct{}

func (brokenClassifier) Fit(*dataset.Dataset) error {
	return errors.NewNotFittedError("brokenClassifier", "Fit")
}

func (brokenClassifier) Predict(*dataset.Dataset, int) (float64, error) {
	return 0, nil
}

func classDataset(t *testing.T, classes []float64) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([]dataset.Attribute{
		{Name: "x", Kind: dataset.Numeric},
		{Name: "class", Kind: dataset.Nominal, Values: []string{"a", "b"}},
	}, 1)
	require.NoError(t, err)
	for i, c := range classes {
		require.NoError(t, ds.Append([]float64{float64(i), c}))
	}
	return ds
}

func TestVotesOracle(t *testing.T) {
	ds := classDataset(t, []float64{0, 1, 0, 1, 0, 1, 0, 1})
	cv := &CrossValidator{Folds: 4, Iterations: 3, Seed: 1}

	votes, err := cv.Votes(context.Background(), ds, func() Classifier { return oracleClassifier{} })
	require.NoError(t, err)
	require.Len(t, votes, ds.NumRows())

	// Every row is predicted once per iteration, always correctly.
	for i, v := range votes {
		assert.Equal(t, float64(3), v[int(ds.ClassValue(i))], "row %d", i)
		assert.Equal(t, float64(3), v[0]+v[1], "row %d total votes", i)
	}
}

func TestVotesConstantClassifier(t *testing.T) {
	ds := classDataset(t, []float64{0, 1, 0, 1, 0, 1, 0, 1})
	cv := &CrossValidator{Folds: 2, Iterations: 1, Seed: 1}

	votes, err := cv.Votes(context.Background(), ds, func() Classifier { return constantClassifier{class: 0} })
	require.NoError(t, err)
	for i, v := range votes {
		assert.Equal(t, float64(1), v[0], "row %d", i)
		assert.Equal(t, float64(0), v[1], "row %d", i)
	}
}

func TestVotesFoldFailureAborts(t *testing.T) {
	ds := classDataset(t, []float64{0, 1, 0, 1})
	cv := &CrossValidator{Folds: 2, Iterations: 1, Seed: 1}

	_, err := cv.Votes(context.Background(), ds, func() Classifier { return brokenClassifier{} })
	require.Error(t, err)

	var notFitted *errors.NotFittedError
	assert.ErrorAs(t, err, &notFitted)
}

func TestVotesRejectsBadPrediction(t *testing.T) {
	ds := classDataset(t, []float64{0, 1, 0, 1})
	cv := &CrossValidator{Folds: 2, Iterations: 1, Seed: 1}

	_, err := cv.Votes(context.Background(), ds, func() Classifier { return constantClassifier{class: 7} })
	require.Error(t, err)
}

func TestVotesCancelled(t *testing.T) {
	ds := classDataset(t, []float64{0, 1, 0, 1})
	cv := &CrossValidator{Folds: 2, Iterations: 1, Seed: 1}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cv.Votes(ctx, ds, func() Classifier { return oracleClassifier{} })
	require.Error(t, err)
}

func TestVotesValidation(t *testing.T) {
	ds := classDataset(t, []float64{0, 1})
	factory := func() Classifier { return oracleClassifier{} }

	_, err := (&CrossValidator{Folds: 1, Iterations: 1}).Votes(context.Background(), ds, factory)
	require.Error(t, err)
	_, err = (&CrossValidator{Folds: 2, Iterations: 0}).Votes(context.Background(), ds, factory)
	require.Error(t, err)
}

func TestTargets(t *testing.T) {
	ds := classDataset(t, []float64{0, 1, 0, 1})
	votes := [][]float64{
		{4, 0}, // class a, always right
		{4, 0}, // class b, always wrong
		{1, 3}, // class a, mostly wrong
		{1, 3}, // class b, mostly right but below cutoff
	}

	bits, flags, err := Targets(ds, votes, 0.80)
	require.NoError(t, err)

	assert.Equal(t, []bool{false, true, true, true}, flags)
	assert.Equal(t, uint(3), bits.Count())
	assert.True(t, bits.Test(1))
}

func TestTargetsSkipsUnvotedRows(t *testing.T) {
	ds := classDataset(t, []float64{0, 1})
	votes := [][]float64{{0, 0}, {0, 0}}

	bits, flags, err := Targets(ds, votes, 0.80)
	require.NoError(t, err)
	assert.Equal(t, uint(0), bits.Count())
	assert.Equal(t, []bool{false, false}, flags)
}

func TestTargetsValidation(t *testing.T) {
	ds := classDataset(t, []float64{0, 1})
	votes := [][]float64{{1, 0}, {0, 1}}

	_, _, err := Targets(ds, votes, 0)
	require.Error(t, err)
	_, _, err = Targets(ds, votes, 1.5)
	require.Error(t, err)
	_, _, err = Targets(ds, votes[:1], 0.8)
	require.Error(t, err)
}
