package ports

import (
	"context"

	"github.com/dinet/pedidos-importacion/internal/domain"
)

// PedidosRepositorio — persistencia durable de pedidos.
type PedidosRepositorio interface {
	// UpsertPorLote — insert-or-update por numero_pedido; en conflicto sobreescribe los
	// campos mutables y refresca actualizado_en. Lote vacío = no-op.
	UpsertPorLote(ctx context.Context, pedidos []domain.Pedido) error

	// ObtenerPorNumero — (nil, nil) cuando el pedido no existe.
	ObtenerPorNumero(ctx context.Context, numeroPedido string) (*domain.Pedido, error)
}
