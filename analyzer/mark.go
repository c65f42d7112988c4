package analyzer

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/ruleminer/dataset"
)

const (
	markTrue  = 0.0
	markFalse = 1.0
)

// MarkDataset returns a copy of the session's dataset extended with one
// True/False column per mined rule, flagging the rows the rule covers,
// plus a final column flagging the rows that were targets. The marked
// dataset can be fed back into a classifier or inspected by hand.
func MarkDataset(res *Result) (*dataset.Dataset, error) {
	attrs := make([]dataset.Attribute, 0, res.Data.NumAttributes()+res.Rules.Len()+1)
	attrs = append(attrs, res.Data.Attributes()...)
	for i, conj := range res.Rules.Rules() {
		attrs = append(attrs, dataset.Attribute{
			Name:   fmt.Sprintf("Rule %d: %s", i+1, flatten(conj.String())),
			Kind:   dataset.Nominal,
			Values: []string{"True", "False"},
		})
	}
	attrs = append(attrs, dataset.Attribute{
		Name:   "Misclassified",
		Kind:   dataset.Nominal,
		Values: []string{"True", "False"},
	})

	marked, err := dataset.New(attrs, res.Data.ClassIndex())
	if err != nil {
		return nil, err
	}
	for i := 0; i < res.Data.NumRows(); i++ {
		row := make([]float64, 0, len(attrs))
		row = append(row, res.Data.Row(i)...)
		for _, conj := range res.Rules.Rules() {
			row = append(row, mark(conj.Covered().Test(uint(i))))
		}
		row = append(row, mark(res.Targets[i]))
		if err := marked.Append(row); err != nil {
			return nil, err
		}
	}
	return marked, nil
}

func mark(b bool) float64 {
	if b {
		return markTrue
	}
	return markFalse
}

// flatten collapses a multi-line rule description into one attribute name.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
