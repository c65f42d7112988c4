// Package ruleminer finds human-readable rules describing where a
// classifier makes its mistakes.
//
// A classifier is cross-validated over a dataset to mark the rows it
// misclassifies, candidate predicates are generated over the dataset's
// attributes, and a beam search assembles predicate conjunctions that
// cover regions of the feature space dense in misclassified rows. The
// result is a small, ordered set of rules such as
//
//	(age >= 61.000) AND (chestPain == asympt)
//
// each annotated with how many rows it covers and how many of them the
// classifier got wrong.
//
// The subpackages split the pipeline into reusable parts:
//
//   - dataset: the tabular data abstraction with numeric and nominal
//     attributes
//   - classify: the classifier contract and cross-validated vote counting
//   - rule: bitset-backed predicates, conjunctions and candidate
//     generation
//   - miner: beam search, scoring and pruning
//   - metrics: confusion matrices over vote counts
//   - analyzer: the end-to-end driver and report rendering
//
// Most callers only need analyzer.New and Analyzer.Analyze, providing
// their classifier through the classify.Factory hook.
package ruleminer
