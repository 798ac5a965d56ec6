package domain

// Códigos de error de fila y de archivo (vocabulario cerrado).
const (
	MotivoCabeceraInvalida    = "CABECERA_INVALIDA"
	MotivoCSVIlegible         = "CSV_ILEGIBLE"
	MotivoFechaFormato        = "FECHA_INVALIDA_FORMATO"
	MotivoEstadoInvalido      = "ESTADO_INVALIDO"
	MotivoBooleanoInvalido    = "BOOLEANO_INVALIDO_requiere_refrigeracion"
	MotivoNumeroInvalido      = "NUMERO_PEDIDO_INVALIDO"
	MotivoErrorDesconocido    = "ERROR_DESCONOCIDO"
	MotivoClienteNoEncontrado = "CLIENTE_NO_ENCONTRADO"
	MotivoZonaInvalida        = "ZONA_INVALIDA"
	MotivoCadenaFrio          = "CADENA_FRIO_NO_SOPORTADA"
	MotivoFechaInvalida       = "FECHA_INVALIDA"

	// MotivoCampoFaltaPrefijo — prefijo; se completa con el nombre de la columna.
	MotivoCampoFaltaPrefijo = "CAMPO_OBLIGATORIO_FALTA_"
)

// ErrorFila — error asociado a una línea del archivo (la cabecera es la línea 1).
type ErrorFila struct {
	Linea  int    `json:"linea"`
	Motivo string `json:"motivo"`
}

// ResumenCarga — resultado de una carga: totales y errores por fila y agrupados.
// Invariante: TotalProcesados = Guardados + ConError cuando el archivo fue legible.
type ResumenCarga struct {
	TotalProcesados  int            `json:"totalProcesados"`
	Guardados        int            `json:"guardados"`
	ConError         int            `json:"conError"`
	ErroresPorFila   []ErrorFila    `json:"erroresPorFila"`
	ErroresAgrupados map[string]int `json:"erroresAgrupados"`
}

// ResumenVacio — respuesta para cargas repetidas (no-op idempotente).
func ResumenVacio() ResumenCarga {
	return ResumenCarga{
		ErroresPorFila:   []ErrorFila{},
		ErroresAgrupados: map[string]int{},
	}
}
