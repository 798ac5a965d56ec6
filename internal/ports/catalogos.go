package ports

import "context"

// CatalogosConsulta — consultas de solo lectura a los catálogos de clientes y zonas.
// Las respuestas son punto-en-tiempo: cada fila se consulta por separado, sin caché.
type CatalogosConsulta interface {
	// ExisteCliente — true si el cliente existe y está activo.
	ExisteCliente(ctx context.Context, clienteID string) (bool, error)

	// ZonaSoportaRefrigeracion — (soporta, true) si la zona existe;
	// (false, false) cuando la zona es desconocida.
	ZonaSoportaRefrigeracion(ctx context.Context, zonaID string) (soporta bool, existe bool, err error)
}
