package httpx

import (
	"github.com/dinet/pedidos-importacion/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderCorrelationID — cabecera de correlación aceptada y devuelta por el servicio.
const HeaderCorrelationID = "X-Correlation-Id"

// CorrelationIDMiddleware:
// - acepta X-Correlation-Id del cliente o genera un UUID
// - guarda el correlation_id en el contexto
// - lo devuelve en la cabecera de la respuesta
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(HeaderCorrelationID)
		if correlationID == "" {
			correlationID = uuid.New().String()
		}
		c.Header(HeaderCorrelationID, correlationID)

		ctx := ctxmeta.WithCorrelationID(c.Request.Context(), correlationID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
