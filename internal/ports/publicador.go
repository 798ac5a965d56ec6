package ports

import (
	"context"

	"github.com/dinet/pedidos-importacion/internal/domain"
)

// EventoCarga — notificación para sistemas aguas abajo tras una carga completada.
type EventoCarga struct {
	ClaveIdempotencia string `json:"clave_idempotencia"`
	ArchivoHash       string `json:"archivo_hash"`
	TotalProcesados   int    `json:"total_procesados"`
	Guardados         int    `json:"guardados"`
	ConError          int    `json:"con_error"`
}

// PublicadorEventos — publicación best-effort de eventos de carga.
type PublicadorEventos interface {
	PublicarResumen(ctx context.Context, evento EventoCarga) error
	Close() error
}

// Adaptación del ResumenCarga al evento publicado.
func NuevoEventoCarga(clave, hash string, resumen domain.ResumenCarga) EventoCarga {
	return EventoCarga{
		ClaveIdempotencia: clave,
		ArchivoHash:       hash,
		TotalProcesados:   resumen.TotalProcesados,
		Guardados:         resumen.Guardados,
		ConError:          resumen.ConError,
	}
}
