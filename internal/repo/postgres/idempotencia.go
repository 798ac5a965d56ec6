package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dinet/pedidos-importacion/internal/ports"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Comprobación de que AlmacenIdempotencia cumple el puerto AlmacenIdempotencia.
var _ ports.AlmacenIdempotencia = (*AlmacenIdempotencia)(nil)

// AlmacenIdempotencia — reclamo de cargas sobre Postgres. La exclusión mutua
// es la restricción UNIQUE (clave_idempotencia, archivo_hash): un solo insert
// atómico, sin locks sostenidos durante el procesamiento.
type AlmacenIdempotencia struct {
	pool *pgxpool.Pool
}

// NewAlmacenIdempotencia — constructor.
func NewAlmacenIdempotencia(pool *pgxpool.Pool) *AlmacenIdempotencia {
	return &AlmacenIdempotencia{pool: pool}
}

// RegistrarInicio — insert-si-ausente. La violación de unicidad se detecta y
// se devuelve como false, no como error.
func (a *AlmacenIdempotencia) RegistrarInicio(ctx context.Context, claveIdempotencia, archivoHash string) (bool, error) {
	_, err := a.pool.Exec(ctx,
		`INSERT INTO cargas_idempotencia (clave_idempotencia, archivo_hash) VALUES ($1, $2)`,
		claveIdempotencia, archivoHash,
	)
	if esViolacionUnicidad(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("registrar inicio: %w", err)
	}
	return true, nil
}

// EstadoDe — la existencia de la fila para la pareja exacta se reporta como COMPLETED.
func (a *AlmacenIdempotencia) EstadoDe(ctx context.Context, claveIdempotencia, archivoHash string) (ports.EstadoCarga, bool, error) {
	var existe bool
	err := a.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM cargas_idempotencia WHERE clave_idempotencia = $1 AND archivo_hash = $2)`,
		claveIdempotencia, archivoHash,
	).Scan(&existe)
	if err != nil {
		return "", false, fmt.Errorf("estado de carga: %w", err)
	}
	if !existe {
		return "", false, nil
	}
	return ports.CargaCompletada, true, nil
}

// esViolacionUnicidad — true para SQLSTATE 23505 (unique_violation).
func esViolacionUnicidad(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
