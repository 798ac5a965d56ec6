package rest

import (
	"io"
	"net/http"

	"github.com/dinet/pedidos-importacion/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// HeaderIdempotencia — cabecera obligatoria en la carga; la provee el llamante.
const HeaderIdempotencia = "Idempotency-Key"

// cargarPedidos — POST /pedidos/cargar (multipart, parte "file").
// Devuelve siempre el resumen completo o un fallo duro; nunca un resumen parcial.
func (h *Handler) cargarPedidos(c *gin.Context) {
	ctx := c.Request.Context()

	clave := c.GetHeader(HeaderIdempotencia)
	if clave == "" {
		httpx.AbortConError(c, http.StatusBadRequest, "BAD_REQUEST",
			"cabecera Idempotency-Key requerida", "Header requerido")
		return
	}

	archivo, err := c.FormFile("file")
	if err != nil {
		httpx.AbortConError(c, http.StatusBadRequest, "BAD_REQUEST", "parte 'file' requerida")
		return
	}
	if h.maxUploadBytes > 0 && archivo.Size > h.maxUploadBytes {
		httpx.AbortConError(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Archivo demasiado grande")
		return
	}

	f, err := archivo.Open()
	if err != nil {
		httpx.AbortConError(c, http.StatusBadRequest, "BAD_REQUEST", "no se pudo leer el archivo")
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		httpx.AbortConError(c, http.StatusBadRequest, "BAD_REQUEST", "no se pudo leer el archivo")
		return
	}

	resumen, err := h.service.Cargar(ctx, data, clave)
	if err != nil {
		h.log.Errorf(ctx, "Cargar falló clave=%s err=%v", clave, err)
		httpx.AbortConError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Error interno")
		return
	}

	c.JSON(http.StatusOK, resumen)
}

// obtenerPedido — GET /pedidos/:numero.
func (h *Handler) obtenerPedido(c *gin.Context) {
	numero := c.Param("numero")
	if numero == "" {
		httpx.AbortConError(c, http.StatusBadRequest, "BAD_REQUEST", "numero de pedido vacío")
		return
	}

	pedido, err := h.service.ObtenerPedido(c.Request.Context(), numero)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "ObtenerPedido falló numero=%s err=%v", numero, err)
		httpx.AbortConError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Error interno")
		return
	}
	if pedido == nil {
		httpx.AbortConError(c, http.StatusNotFound, "NOT_FOUND", "pedido no encontrado")
		return
	}

	c.JSON(http.StatusOK, pedido)
}
