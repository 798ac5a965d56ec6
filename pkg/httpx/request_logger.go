package httpx

import (
	"time"

	"github.com/dinet/pedidos-importacion/internal/ports"
	"github.com/dinet/pedidos-importacion/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware de logging de peticiones HTTP.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// no registramos /metrics ni /ping
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		cid, _ := ctxmeta.CorrelationIDFromContext(c.Request.Context())
		tr, _ := ctxmeta.TraceIDFromContext(c.Request.Context())
		sp, _ := ctxmeta.SpanIDFromContext(c.Request.Context())

		log.Infof(
			c.Request.Context(),
			"request cid=%s trace=%s span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			cid, tr, sp,
			c.Request.Method, path, c.Writer.Status(), c.ClientIP(), time.Since(start), c.Writer.Size(),
		)
	}
}
