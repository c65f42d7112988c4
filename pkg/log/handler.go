package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// errFmtHandler decorates a slog handler so that records carrying an
// error attribute also emit the stacktrace recorded by cockroachdb/errors.
type errFmtHandler struct {
	next slog.Handler
}

// WrapByErrFmtHandler wraps a handler with stacktrace extraction. Records
// logged with ErrAttr gain a stacktrace attribute when the error carries
// one.
func WrapByErrFmtHandler(next slog.Handler) slog.Handler {
	return &errFmtHandler{next: next}
}

func (h *errFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.next.Enabled(ctx, l)
}

func (h *errFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key != ErrAttrKey {
			return true
		}
		if err, ok := attr.Value.Any().(error); ok {
			stacktrace = extractStacktrace(err)
		}
		return false
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return h.next.Handle(ctx, r)
}

func (h *errFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errFmtHandler{next: h.next.WithAttrs(attrs)}
}

func (h *errFmtHandler) WithGroup(g string) slog.Handler {
	return &errFmtHandler{next: h.next.WithGroup(g)}
}

// extractStacktrace returns the first safe detail payload, which is where
// errors.WithStack records the formatted stacktrace.
func extractStacktrace(err error) string {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) == 0 {
		return ""
	}
	return details[0]
}
