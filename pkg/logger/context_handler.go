package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls a single attribute out of a context. Returning
// false skips the attribute for that record.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler decorates a slog.Handler with per-record context
// extraction. Extractors run on every Handle call, so values placed in the
// request context (locale, request ID) show up on log lines without the
// call sites threading them through.
type ContextHandler struct {
	inner      slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps handler with the given extractors. Nil extractors
// are dropped at construction so Handle never has to check.
func NewContextHandler(handler slog.Handler, extractors ...ContextExtractor) *ContextHandler {
	kept := make([]ContextExtractor, 0, len(extractors))
	for _, extract := range extractors {
		if extract != nil {
			kept = append(kept, extract)
		}
	}
	return &ContextHandler{
		inner:      handler,
		extractors: kept,
	}
}

// Enabled reports whether the wrapped handler handles records at the
// given level.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle applies the extractors to the record, then delegates.
func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, extract := range h.extractors {
		if attr, ok := extract(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.inner.Handle(ctx, rec)
}

// WithAttrs returns a new handler whose attributes consist of both the
// receiver's attributes and the arguments.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{
		inner:      h.inner.WithAttrs(attrs),
		extractors: h.extractors,
	}
}

// WithGroup returns a new handler with the given group appended to the
// receiver's existing groups.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{
		inner:      h.inner.WithGroup(name),
		extractors: h.extractors,
	}
}
