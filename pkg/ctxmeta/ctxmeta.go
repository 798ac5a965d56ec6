// Paquete ctxmeta — capa neutral para los metadatos de la petición que viajan
// por context.Context (correlation_id, trace_id, etc.).
// La capa HTTP y el logger dependen de este paquete pequeño, no entre sí.
package ctxmeta

import "context"

type ctxKey string

const (
	// Claves de contexto (tipo no exportado para evitar colisiones).
	KeyCorrelationID ctxKey = "correlation_id"
)

// WithCorrelationID guarda el correlation_id en el contexto (vacío = no hace nada).
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	if ctx == nil || correlationID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyCorrelationID, correlationID)
}

// CorrelationIDFromContext recupera el correlation_id del contexto.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyCorrelationID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
