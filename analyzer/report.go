package analyzer

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/ruleminer/metrics"
	"github.com/YuminosukeSato/ruleminer/rule"
)

// Report renders a mining session as text: overall classifier accuracy
// with its confusion matrix, then each mined rule with coverage stats and
// the confusion matrix of the rows it covers.
func (a *Analyzer) Report(res *Result) (string, error) {
	classAtt, err := res.Data.ClassAttribute()
	if err != nil {
		return "", err
	}

	n := res.Data.NumRows()
	mistakes := int(res.TargetBits.Count())
	matrix, err := metrics.ConfusionMatrix(res.Data, res.Votes, nil)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Rows: %d\n", n)
	fmt.Fprintf(&sb, "Misclassified: %d (%.1f%%)\n\n", mistakes, 100*float64(mistakes)/float64(n))
	sb.WriteString("Confusion matrix (rows: actual, columns: predicted):\n")
	sb.WriteString(metrics.FormatSquareMatrix(classAtt.Values, matrix))
	fmt.Fprintf(&sb, "\nCandidate rules generated: %d\n", res.Candidates)
	fmt.Fprintf(&sb, "Rules found: %d\n", res.Rules.Len())

	view := rule.NewRangeView(res.TargetBits, n, 0, n)
	for i, conj := range res.Rules.Rules() {
		fmt.Fprintf(&sb, "\nRule %d:\n%s\n", i+1, conj.String())
		fmt.Fprintf(&sb, "Stats: %s\n", a.m.RuleReport(conj, conj.Len(), view))
		ruleMatrix, err := metrics.ConfusionMatrix(res.Data, res.Votes, coveredRows(conj))
		if err != nil {
			return "", err
		}
		sb.WriteString("Covered rows confusion matrix:\n")
		sb.WriteString(metrics.FormatSquareMatrix(classAtt.Values, ruleMatrix))
	}
	return sb.String(), nil
}

// RuleDetail renders one mined rule clause by clause, showing how the
// coverage stats evolve as each predicate is added.
func (a *Analyzer) RuleDetail(res *Result, i int) string {
	n := res.Data.NumRows()
	view := rule.NewRangeView(res.TargetBits, n, 0, n)
	return a.m.RuleBreakdown(res.Rules.At(i), view)
}

// coveredRows lists the indices of the rows a rule covers.
func coveredRows(r rule.Rule) []int {
	covered := r.Covered()
	rows := make([]int, 0, covered.Count())
	for i, ok := covered.NextSet(0); ok; i, ok = covered.NextSet(i + 1) {
		rows = append(rows, int(i))
	}
	return rows
}
