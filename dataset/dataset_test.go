package dataset

import (
	"math/rand"
	"testing"
)

func newTestDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New([]Attribute{
		{Name: "id", Kind: Numeric},
		{Name: "x", Kind: Numeric},
		{Name: "class", Kind: Nominal, Values: []string{"no", "yes"}},
	}, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 6; i++ {
		if err := ds.Append([]float64{float64(i), float64(10 - i), float64(i % 2)}); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	return ds
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, -1); err == nil {
		t.Error("expected error for empty attribute list")
	}
	if _, err := New([]Attribute{{Name: "x", Kind: Numeric}}, 5); err == nil {
		t.Error("expected error for out-of-range class index")
	}
}

func TestAppendDimensionMismatch(t *testing.T) {
	ds := newTestDataset(t)
	if err := ds.Append([]float64{1, 2}); err == nil {
		t.Error("expected error for short row")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	ds := newTestDataset(t)
	cp := ds.Copy()
	cp.rows[0][1] = 99

	if ds.Value(0, 1) == 99 {
		t.Error("mutating the copy changed the original")
	}
}

func TestSubsetKeepsOrderAndClass(t *testing.T) {
	ds := newTestDataset(t)
	sub := ds.Subset([]int{4, 1})

	if sub.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", sub.NumRows())
	}
	if sub.Value(0, 0) != 4 || sub.Value(1, 0) != 1 {
		t.Error("subset rows out of order")
	}
	if sub.ClassIndex() != ds.ClassIndex() {
		t.Errorf("class index changed: %d vs %d", sub.ClassIndex(), ds.ClassIndex())
	}
}

func TestSortedIndices(t *testing.T) {
	ds := newTestDataset(t)
	// Column x holds 10, 9, 8, 7, 6, 5, so ascending order is reversed.
	order := ds.SortedIndices(1)
	for i := 0; i < len(order)-1; i++ {
		if ds.Value(order[i], 1) > ds.Value(order[i+1], 1) {
			t.Fatalf("indices not sorted at position %d", i)
		}
	}
}

func TestShuffleInSync(t *testing.T) {
	ds := newTestDataset(t)
	other := []int{0, 1, 2, 3, 4, 5}
	if err := ds.ShuffleInSync(other, rand.New(rand.NewSource(7))); err != nil {
		t.Fatalf("ShuffleInSync failed: %v", err)
	}
	for i := range other {
		if int(ds.Value(i, 0)) != other[i] {
			t.Fatalf("row %d desynchronized: id %v, paired %d", i, ds.Value(i, 0), other[i])
		}
	}

	if err := ds.ShuffleInSync([]int{1, 2}, rand.New(rand.NewSource(7))); err == nil {
		t.Error("expected error for mismatched slice length")
	}
}

func TestRemoveColumn(t *testing.T) {
	ds := newTestDataset(t)
	out, err := RemoveColumn(ds, 0)
	if err != nil {
		t.Fatalf("RemoveColumn failed: %v", err)
	}

	if out.NumAttributes() != 2 {
		t.Fatalf("expected 2 attributes, got %d", out.NumAttributes())
	}
	if out.Attribute(0).Name != "x" {
		t.Errorf("expected first attribute x, got %s", out.Attribute(0).Name)
	}
	// The class attribute sat after the removed column, so its index shifts.
	if out.ClassIndex() != 1 {
		t.Errorf("expected class index 1, got %d", out.ClassIndex())
	}
	for i := 0; i < out.NumRows(); i++ {
		if out.ClassValue(i) != ds.ClassValue(i) {
			t.Fatalf("class value of row %d changed", i)
		}
	}
	// The original is untouched.
	if ds.NumAttributes() != 3 {
		t.Error("RemoveColumn modified its input")
	}
}

func TestRemoveColumnRejectsClass(t *testing.T) {
	ds := newTestDataset(t)
	if _, err := RemoveColumn(ds, ds.ClassIndex()); err == nil {
		t.Error("expected error removing the class attribute")
	}
	if _, err := RemoveColumn(ds, 17); err == nil {
		t.Error("expected error for out-of-range column")
	}
}

func TestFormatValue(t *testing.T) {
	nominal := Attribute{Name: "class", Kind: Nominal, Values: []string{"no", "yes"}}
	if got := nominal.FormatValue(1); got != "yes" {
		t.Errorf("expected yes, got %s", got)
	}
	numeric := Attribute{Name: "x", Kind: Numeric}
	if got := numeric.FormatValue(2.5); got != "2.500" {
		t.Errorf("expected 2.500, got %s", got)
	}
}
