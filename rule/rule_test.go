package rule

import (
	"testing"

	"github.com/YuminosukeSato/ruleminer/dataset"
)

// numericColumn builds a single-column dataset holding the given values.
func numericColumn(t *testing.T, name string, values []float64) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([]dataset.Attribute{{Name: name, Kind: dataset.Numeric}}, -1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, v := range values {
		if err := ds.Append([]float64{v}); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	return ds
}

func coveredRows(r Rule) []int {
	var out []int
	c := r.Covered()
	for i, ok := c.NextSet(0); ok; i, ok = c.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

func TestLeafMatchesRowScan(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	ds := numericColumn(t, "x", values)

	ops := []Op{Equals, NotEquals, Less, LessOrEqual, Greater, GreaterOrEqual}
	for _, op := range ops {
		leaf := NewLeaf(ds, 0, op, 4)
		covered := leaf.Covered()
		for i, v := range values {
			want := false
			switch op {
			case Equals:
				want = v == 4
			case NotEquals:
				want = v != 4
			case Less:
				want = v < 4
			case LessOrEqual:
				want = v <= 4
			case Greater:
				want = v > 4
			case GreaterOrEqual:
				want = v >= 4
			}
			if covered.Test(uint(i)) != want {
				t.Errorf("%s: row %d (value %v): covered=%v, want %v",
					leaf.String(), i, v, covered.Test(uint(i)), want)
			}
		}
	}
}

func TestLeafDescription(t *testing.T) {
	ds := numericColumn(t, "age", []float64{30, 60})
	leaf := NewLeaf(ds, 0, GreaterOrEqual, 45)
	if leaf.String() != "(age >= 45.000)" {
		t.Errorf("unexpected description: %s", leaf.String())
	}

	nom, err := dataset.New([]dataset.Attribute{
		{Name: "color", Kind: dataset.Nominal, Values: []string{"red", "blue"}},
	}, -1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_ = nom.Append([]float64{0})
	eq := NewLeaf(nom, 0, Equals, 1)
	if eq.String() != "(color == blue)" {
		t.Errorf("unexpected description: %s", eq.String())
	}
}

func TestTrueCoversEverything(t *testing.T) {
	r := True(5)
	if got := int(r.Covered().Count()); got != 5 {
		t.Errorf("expected 5 covered rows, got %d", got)
	}
	if r.String() != "true" {
		t.Errorf("unexpected description: %s", r.String())
	}
}
