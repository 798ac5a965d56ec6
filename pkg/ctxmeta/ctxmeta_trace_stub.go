//go:build !otel || gopls

package ctxmeta

import "context"

// Compilación sin el tag `otel`: stubs para trace/span.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
