package ports

import "context"

// EstadoCarga — estado observable de una carga registrada.
// El almacén actual solo distingue existencia de la pareja (clave, hash):
// una fila presente se reporta como COMPLETED.
type EstadoCarga string

const CargaCompletada EstadoCarga = "COMPLETED"

// AlmacenIdempotencia — reclamo atómico de la pareja (clave de idempotencia, hash del archivo).
// Ninguna operación bloquea: ambas son un único round-trip al almacén.
type AlmacenIdempotencia interface {
	// RegistrarInicio — intenta reclamar la pareja. true si este llamado creó el reclamo;
	// false si ya estaba reclamada (violación de unicidad detectada, no un error).
	RegistrarInicio(ctx context.Context, claveIdempotencia, archivoHash string) (bool, error)

	// EstadoDe — (CargaCompletada, true) si existe una fila para la pareja exacta.
	EstadoDe(ctx context.Context, claveIdempotencia, archivoHash string) (EstadoCarga, bool, error)
}
