package ports

import (
	"context"

	"github.com/dinet/pedidos-importacion/internal/domain"
)

// CargaPedidosService — caso de uso consumido por el transporte HTTP.
type CargaPedidosService interface {
	// Cargar — procesa el archivo completo y devuelve el resumen.
	// Un error indica fallo de persistencia o de infraestructura (nunca resumen parcial).
	Cargar(ctx context.Context, csvBytes []byte, claveIdempotencia string) (domain.ResumenCarga, error)

	// ObtenerPedido — lectura por clave natural; (nil, nil) si no existe.
	ObtenerPedido(ctx context.Context, numeroPedido string) (*domain.Pedido, error)
}
