package validate

import (
	"context"
	"fmt"
	"time"

	"github.com/dinet/pedidos-importacion/internal/domain"
	"github.com/dinet/pedidos-importacion/internal/ports"
)

// Comprobación de que ValidadorPedido cumple el puerto ValidadorPedido.
var _ ports.ValidadorPedido = (*ValidadorPedido)(nil)

// ValidadorPedido — reglas de negocio sobre un candidato ya parseado.
// "Hoy" sale del reloj inyectado en la zona configurada (decisión de negocio:
// America/Lima por defecto, nunca la hora local del sistema).
type ValidadorPedido struct {
	catalogos ports.CatalogosConsulta
	reloj     ports.Reloj
	zona      *time.Location
}

// NewValidadorPedido — constructor DI. zona nil = UTC.
func NewValidadorPedido(catalogos ports.CatalogosConsulta, reloj ports.Reloj, zona *time.Location) *ValidadorPedido {
	if zona == nil {
		zona = time.UTC
	}
	return &ValidadorPedido{catalogos: catalogos, reloj: reloj, zona: zona}
}

// Validar — acumula los códigos de violación en orden de evaluación:
// cliente, zona/cadena de frío, fecha de entrega. Cada fila consulta los
// catálogos por separado (sin caché entre filas).
func (v *ValidadorPedido) Validar(ctx context.Context, p *domain.Pedido) ([]string, error) {
	var codigos []string

	existe, err := v.catalogos.ExisteCliente(ctx, p.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("consultar cliente %s: %w", p.ClienteID, err)
	}
	if !existe {
		codigos = append(codigos, domain.MotivoClienteNoEncontrado)
	}

	soporta, existeZona, err := v.catalogos.ZonaSoportaRefrigeracion(ctx, p.ZonaID)
	if err != nil {
		return nil, fmt.Errorf("consultar zona %s: %w", p.ZonaID, err)
	}
	switch {
	case !existeZona:
		codigos = append(codigos, domain.MotivoZonaInvalida)
	case p.RequiereRefrigeracion && !soporta:
		codigos = append(codigos, domain.MotivoCadenaFrio)
	}

	hoy := v.reloj.Ahora().In(v.zona)
	if antesDelDia(p.FechaEntrega, hoy) {
		codigos = append(codigos, domain.MotivoFechaInvalida)
	}

	return codigos, nil
}

// antesDelDia — true si la fecha (solo día) es estrictamente anterior a hoy (solo día).
func antesDelDia(fecha, hoy time.Time) bool {
	fy, fm, fd := fecha.Date()
	hy, hm, hd := hoy.Date()
	if fy != hy {
		return fy < hy
	}
	if fm != hm {
		return fm < hm
	}
	return fd < hd
}
