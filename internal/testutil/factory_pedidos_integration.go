//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dinet/pedidos-importacion/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Mini generador de pedido valido
func MakePedido(opts ...func(*domain.Pedido)) domain.Pedido {
	p := domain.Pedido{
		NumeroPedido:          "PED-" + UniqSuffix(),
		ClienteID:             "cli-" + UniqSuffix(),
		ZonaID:                "zona-" + UniqSuffix(),
		FechaEntrega:          time.Now().UTC().AddDate(0, 0, 7).Truncate(24 * time.Hour),
		Estado:                domain.EstadoPendiente,
		RequiereRefrigeracion: false,
	}

	for _, fn := range opts {
		fn(&p)
	}
	return p
}

func WithNumero(numero string) func(*domain.Pedido) {
	return func(p *domain.Pedido) { p.NumeroPedido = numero }
}

func WithCliente(clienteID string) func(*domain.Pedido) {
	return func(p *domain.Pedido) { p.ClienteID = clienteID }
}

func WithZona(zonaID string) func(*domain.Pedido) {
	return func(p *domain.Pedido) { p.ZonaID = zonaID }
}

func WithEstado(estado domain.Estado) func(*domain.Pedido) {
	return func(p *domain.Pedido) { p.Estado = estado }
}

func WithRefrigeracion(requiere bool) func(*domain.Pedido) {
	return func(p *domain.Pedido) { p.RequiereRefrigeracion = requiere }
}

// SeedCliente inserta un cliente en el catalogo.
func SeedCliente(ctx context.Context, pool *pgxpool.Pool, id string, activo bool) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO clientes (id, nombre, activo) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET activo = EXCLUDED.activo`,
		id, "Cliente "+id, activo)
	if err != nil {
		return fmt.Errorf("seed cliente %s: %w", id, err)
	}
	return nil
}

// SeedZona inserta una zona en el catalogo.
func SeedZona(ctx context.Context, pool *pgxpool.Pool, id string, soporteRefrigeracion bool) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO zonas (id, nombre, soporte_refrigeracion) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET soporte_refrigeracion = EXCLUDED.soporte_refrigeracion`,
		id, "Zona "+id, soporteRefrigeracion)
	if err != nil {
		return fmt.Errorf("seed zona %s: %w", id, err)
	}
	return nil
}
