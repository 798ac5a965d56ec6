package ports

import (
	"context"

	"github.com/dinet/pedidos-importacion/internal/domain"
)

// ValidadorPedido — reglas de negocio sobre un candidato ya parseado.
// Devuelve los códigos de violación en orden de evaluación (vacío = válido).
// Un error indica fallo consultando los catálogos, no una violación de negocio.
type ValidadorPedido interface {
	Validar(ctx context.Context, pedido *domain.Pedido) ([]string, error)
}
