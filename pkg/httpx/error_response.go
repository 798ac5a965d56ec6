package httpx

import (
	"github.com/dinet/pedidos-importacion/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// ErrorResponse — sobre de error JSON uniforme para todo el servicio.
type ErrorResponse struct {
	Code          string   `json:"code"`
	Message       string   `json:"message"`
	Details       []string `json:"details"`
	CorrelationID string   `json:"correlationId"`
}

// AbortConError — corta la petición con el sobre de error y el status dado.
// El correlationId se toma del contexto (vacío si no hay middleware).
func AbortConError(c *gin.Context, status int, code, message string, details ...string) {
	cid, _ := ctxmeta.CorrelationIDFromContext(c.Request.Context())
	if details == nil {
		details = []string{}
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:          code,
		Message:       message,
		Details:       details,
		CorrelationID: cid,
	})
}
