// Package classify defines the external classifier contract the analyzer
// consumes and generates cross-validated per-class vote counts from it.
// The classifier itself is opaque: anything that can be trained on a
// dataset and queried for a predicted class per row works.
package classify

import (
	"github.com/YuminosukeSato/ruleminer/dataset"
)

// Classifier is the trainable, queryable capability the analyzer builds
// and evaluates. Implementations are used from one goroutine at a time;
// concurrent folds each get their own instance from a Factory.
type Classifier interface {
	// Fit trains the classifier on ds.
	Fit(ds *dataset.Dataset) error

	// Predict returns the predicted class index for row i of ds.
	Predict(ds *dataset.Dataset, i int) (float64, error)
}

// Factory produces a fresh, untrained classifier. Cross-validation calls
// it once per fold so folds can run in parallel without shared state.
type Factory func() Classifier
