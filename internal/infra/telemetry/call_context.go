package telemetry

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type callContextKey struct{}

// CallMeta correlates one handled error across log lines and presentations.
type CallMeta struct {
	CallID  string
	TraceID string
	SpanID  string
}

func (m CallMeta) IsZero() bool {
	return m.CallID == "" && m.TraceID == "" && m.SpanID == ""
}

func WithCallMeta(ctx context.Context, meta CallMeta) context.Context {
	if meta.IsZero() {
		return ctx
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, callContextKey{}, meta)
}

func CallMetaFromContext(ctx context.Context) (CallMeta, bool) {
	if ctx == nil {
		return CallMeta{}, false
	}
	meta, ok := ctx.Value(callContextKey{}).(CallMeta)
	return meta, ok && !meta.IsZero()
}

func NewCallID() string {
	return uuid.NewString()
}

func TraceSpanFromContext(ctx context.Context) (string, string) {
	if ctx == nil {
		return "", ""
	}
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return "", ""
	}
	return spanCtx.TraceID().String(), spanCtx.SpanID().String()
}

// EnsureCallMeta reuses the call ID already on ctx or mints a new one, and
// refreshes trace and span IDs from the active span.
func EnsureCallMeta(ctx context.Context) (context.Context, CallMeta) {
	if ctx == nil {
		ctx = context.Background()
	}
	callID := ""
	if existing, ok := CallMetaFromContext(ctx); ok {
		callID = existing.CallID
	}
	if callID == "" {
		callID = NewCallID()
	}
	traceID, spanID := TraceSpanFromContext(ctx)
	meta := CallMeta{CallID: callID, TraceID: traceID, SpanID: spanID}
	return WithCallMeta(ctx, meta), meta
}

func CallFields(meta CallMeta) []zap.Field {
	if meta.IsZero() {
		return nil
	}
	fields := make([]zap.Field, 0, 3)
	if meta.CallID != "" {
		fields = append(fields, CallIDField(meta.CallID))
	}
	if meta.TraceID != "" {
		fields = append(fields, TraceIDField(meta.TraceID))
	}
	if meta.SpanID != "" {
		fields = append(fields, SpanIDField(meta.SpanID))
	}
	return fields
}

func CallFieldsFromContext(ctx context.Context) []zap.Field {
	meta, ok := CallMetaFromContext(ctx)
	if !ok {
		return nil
	}
	return CallFields(meta)
}

func LoggerWithCall(ctx context.Context, base *zap.Logger) *zap.Logger {
	logger := base
	if logger == nil {
		logger = zap.NewNop()
	}
	fields := CallFieldsFromContext(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}
