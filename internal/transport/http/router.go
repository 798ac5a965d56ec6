package rest

import (
	"github.com/dinet/pedidos-importacion/internal/ports"
	"github.com/dinet/pedidos-importacion/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — adaptador HTTP del caso de uso de carga.
type Handler struct {
	service        ports.CargaPedidosService
	log            ports.Logger
	maxUploadBytes int64
}

// NewHandler — constructor. maxUploadBytes <= 0 desactiva el límite de subida.
func NewHandler(service ports.CargaPedidosService, log ports.Logger, maxUploadBytes int64) *Handler {
	return &Handler{service: service, log: log, maxUploadBytes: maxUploadBytes}
}

// NewRouter — arma el router gin. secretoJWT vacío desactiva la autenticación
// (solo desarrollo); otelServiceName vacío omite el middleware de trazas.
func NewRouter(h *Handler, secretoJWT, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.CorrelationIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pedidos := r.Group("/pedidos")
	if secretoJWT != "" {
		pedidos.Use(AuthJWT(secretoJWT))
	}
	pedidos.POST("/cargar", h.cargarPedidos)
	pedidos.GET("/:numero", h.obtenerPedido)

	return r
}
