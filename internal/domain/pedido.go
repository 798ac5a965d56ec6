package domain

import (
	"fmt"
	"strings"
	"time"
)

// Estado — estado de un pedido (conjunto cerrado).
type Estado string

const (
	EstadoPendiente  Estado = "PENDIENTE"
	EstadoConfirmado Estado = "CONFIRMADO"
	EstadoEnRuta     Estado = "EN_RUTA"
	EstadoEntregado  Estado = "ENTREGADO"
	EstadoCancelado  Estado = "CANCELADO"
)

// ParseEstado — convierte el texto del CSV a Estado; error si no pertenece al conjunto.
func ParseEstado(s string) (Estado, error) {
	switch Estado(strings.ToUpper(strings.TrimSpace(s))) {
	case EstadoPendiente:
		return EstadoPendiente, nil
	case EstadoConfirmado:
		return EstadoConfirmado, nil
	case EstadoEnRuta:
		return EstadoEnRuta, nil
	case EstadoEntregado:
		return EstadoEntregado, nil
	case EstadoCancelado:
		return EstadoCancelado, nil
	default:
		return "", fmt.Errorf("estado desconocido: %q", s)
	}
}

// Pedido — entidad persistida; numero_pedido es la clave natural (única en el almacén).
type Pedido struct {
	NumeroPedido          string    `json:"numero_pedido"`
	ClienteID             string    `json:"cliente_id"`
	FechaEntrega          time.Time `json:"fecha_entrega"`
	Estado                Estado    `json:"estado"`
	ZonaID                string    `json:"zona_id"`
	RequiereRefrigeracion bool      `json:"requiere_refrigeracion"`
}
