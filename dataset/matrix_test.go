package dataset

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFromMatrix(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
	})

	ds, err := FromMatrix(X, []string{"a", "b"})
	if err != nil {
		t.Fatalf("FromMatrix failed: %v", err)
	}
	if ds.NumRows() != 3 || ds.NumAttributes() != 2 {
		t.Fatalf("unexpected shape: %d x %d", ds.NumRows(), ds.NumAttributes())
	}
	if ds.Attribute(1).Name != "b" {
		t.Errorf("unexpected attribute name %s", ds.Attribute(1).Name)
	}
	if ds.Value(2, 1) != 30 {
		t.Errorf("unexpected value %v", ds.Value(2, 1))
	}
	if ds.ClassIndex() != -1 {
		t.Errorf("expected no class attribute, got index %d", ds.ClassIndex())
	}

	if _, err := FromMatrix(X, []string{"only-one"}); err == nil {
		t.Error("expected error for mismatched names")
	}
}

func TestFromMatrixDefaultNames(t *testing.T) {
	ds, err := FromMatrix(mat.NewDense(1, 2, []float64{1, 2}), nil)
	if err != nil {
		t.Fatalf("FromMatrix failed: %v", err)
	}
	if ds.Attribute(0).Name != "att0" || ds.Attribute(1).Name != "att1" {
		t.Errorf("unexpected default names %s, %s", ds.Attribute(0).Name, ds.Attribute(1).Name)
	}
}

func TestWithClass(t *testing.T) {
	base, err := FromMatrix(mat.NewDense(2, 1, []float64{1, 2}), []string{"x"})
	if err != nil {
		t.Fatalf("FromMatrix failed: %v", err)
	}

	ds, err := base.WithClass([]float64{0, 1}, "class", []string{"no", "yes"})
	if err != nil {
		t.Fatalf("WithClass failed: %v", err)
	}
	if ds.ClassIndex() != 1 {
		t.Errorf("expected class index 1, got %d", ds.ClassIndex())
	}
	if ds.ClassValue(1) != 1 {
		t.Errorf("unexpected class value %v", ds.ClassValue(1))
	}

	if _, err := base.WithClass([]float64{0}, "class", []string{"no"}); err == nil {
		t.Error("expected error for short y")
	}
	if _, err := base.WithClass([]float64{0, 5}, "class", []string{"no", "yes"}); err == nil {
		t.Error("expected error for out-of-range class value")
	}
}
