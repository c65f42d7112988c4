package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("beams", "must be at least 1", 0)

	msg := err.Error()
	for _, want := range []string{"ruleminer:", "beams", "must be at least 1", "0"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}

	var validationErr *ValidationError
	if !stderrors.As(err, &validationErr) {
		t.Fatal("errors.As failed through the stack wrapper")
	}
	if validationErr.ParamName != "beams" {
		t.Errorf("unexpected param name %q", validationErr.ParamName)
	}
}

func TestDimensionErrorAxisNames(t *testing.T) {
	rows := NewDimensionError("dataset.Append", 3, 2, 0)
	if !strings.Contains(rows.Error(), "rows") {
		t.Errorf("axis 0 should render as rows: %q", rows.Error())
	}
	cols := NewDimensionError("dataset.Append", 3, 2, 1)
	if !strings.Contains(cols.Error(), "attributes") {
		t.Errorf("axis 1 should render as attributes: %q", cols.Error())
	}
}

func TestDataSplitError(t *testing.T) {
	err := NewDataSplitError("miner.Mine", "validation", 2, 0.3)

	var splitErr *DataSplitError
	if !stderrors.As(err, &splitErr) {
		t.Fatal("errors.As failed")
	}
	if splitErr.Split != "validation" || splitErr.Rows != 2 {
		t.Errorf("unexpected fields: %+v", splitErr)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := NewValueError("rule.Generate", "dataset has no rows")
	wrapped := Wrapf(cause, "mining session %d", 7)

	if !strings.Contains(wrapped.Error(), "mining session 7") {
		t.Errorf("wrap message lost: %q", wrapped.Error())
	}
	var valueErr *ValueError
	if !stderrors.As(wrapped, &valueErr) {
		t.Error("cause not reachable through wrap")
	}
}

func TestStacktraceAttached(t *testing.T) {
	err := NewNotFittedError("stub", "Predict")
	if errors.GetReportableStackTrace(err) == nil {
		t.Error("no stacktrace recorded on constructed error")
	}
}
