//go:build otel && !gopls

package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Con el tag `otel` leemos trace/span del span activo
// y los devolvemos como texto para los logs.

func spanContextDe(ctx context.Context) (trace.SpanContext, bool) {
	sc := trace.SpanFromContext(ctx).SpanContext()
	return sc, sc.IsValid()
}

func TraceIDFromContext(ctx context.Context) (string, bool) {
	if sc, ok := spanContextDe(ctx); ok {
		return sc.TraceID().String(), true
	}
	return "", false
}

func SpanIDFromContext(ctx context.Context) (string, bool) {
	if sc, ok := spanContextDe(ctx); ok {
		return sc.SpanID().String(), true
	}
	return "", false
}
