package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dinet/pedidos-importacion/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Comprobación de que CatalogosConsulta cumple el puerto CatalogosConsulta.
var _ ports.CatalogosConsulta = (*CatalogosConsulta)(nil)

// CatalogosConsulta — consultas de catálogo (clientes, zonas) sobre Postgres.
// Solo lectura, punto-en-tiempo: cada llamada es un round-trip, sin caché.
type CatalogosConsulta struct {
	pool *pgxpool.Pool
}

// NewCatalogosConsulta — constructor.
func NewCatalogosConsulta(pool *pgxpool.Pool) *CatalogosConsulta { return &CatalogosConsulta{pool: pool} }

// ExisteCliente — true si el cliente existe y está activo.
func (c *CatalogosConsulta) ExisteCliente(ctx context.Context, clienteID string) (bool, error) {
	var existe bool
	err := c.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM clientes WHERE id = $1 AND activo = true)`,
		clienteID,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe cliente: %w", err)
	}
	return existe, nil
}

// ZonaSoportaRefrigeracion — (soporta, true) si la zona existe; zona ausente = (false, false).
func (c *CatalogosConsulta) ZonaSoportaRefrigeracion(ctx context.Context, zonaID string) (bool, bool, error) {
	var soporta bool
	err := c.pool.QueryRow(ctx,
		`SELECT soporte_refrigeracion FROM zonas WHERE id = $1`,
		zonaID,
	).Scan(&soporta)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("zona soporta refrigeracion: %w", err)
	}
	return soporta, true, nil
}
