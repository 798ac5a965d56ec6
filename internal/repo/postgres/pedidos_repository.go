package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dinet/pedidos-importacion/internal/domain"
	"github.com/dinet/pedidos-importacion/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Comprobación de que PedidosRepository cumple el puerto PedidosRepositorio.
var _ ports.PedidosRepositorio = (*PedidosRepository)(nil)

// PedidosRepository — repositorio de pedidos sobre Postgres (pgxpool).
type PedidosRepository struct {
	pool *pgxpool.Pool
}

// NewPedidosRepository — constructor.
func NewPedidosRepository(pool *pgxpool.Pool) *PedidosRepository { return &PedidosRepository{pool: pool} }

const sqlUpsertPedido = `
	INSERT INTO pedidos (numero_pedido, cliente_id, zona_id, fecha_entrega, estado, requiere_refrigeracion)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (numero_pedido) DO UPDATE SET
		cliente_id = EXCLUDED.cliente_id,
		zona_id = EXCLUDED.zona_id,
		fecha_entrega = EXCLUDED.fecha_entrega,
		estado = EXCLUDED.estado,
		requiere_refrigeracion = EXCLUDED.requiere_refrigeracion,
		actualizado_en = now()
`

// UpsertPorLote — un lote = una transacción = un batch de statements.
// En conflicto por numero_pedido se sobreescriben los campos mutables y se
// refresca actualizado_en; nunca se duplica una fila. Lote vacío = no-op.
func (r *PedidosRepository) UpsertPorLote(ctx context.Context, pedidos []domain.Pedido) error {
	if len(pedidos) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		// Tras Commit, Rollback devuelve ErrTxClosed — lo ignoramos.
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	batch := &pgx.Batch{}
	for _, p := range pedidos {
		batch.Queue(sqlUpsertPedido,
			p.NumeroPedido, p.ClienteID, p.ZonaID, p.FechaEntrega, string(p.Estado), p.RequiereRefrigeracion,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range pedidos {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("upsert pedido %s: %w", pedidos[i].NumeroPedido, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("cerrar batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ObtenerPorNumero — lectura por clave natural. Si no existe devuelve (nil, nil).
func (r *PedidosRepository) ObtenerPorNumero(ctx context.Context, numeroPedido string) (*domain.Pedido, error) {
	var (
		p      domain.Pedido
		estado string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT numero_pedido, cliente_id, zona_id, fecha_entrega, estado, requiere_refrigeracion
		FROM pedidos WHERE numero_pedido = $1
	`, numeroPedido).Scan(&p.NumeroPedido, &p.ClienteID, &p.ZonaID, &p.FechaEntrega, &estado, &p.RequiereRefrigeracion)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select pedido: %w", err)
	}
	p.Estado = domain.Estado(estado)
	return &p, nil
}
