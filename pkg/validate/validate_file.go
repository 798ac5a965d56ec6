package validate

import (
	"fmt"
	"io"
	"os"

	csvpedidos "github.com/dinet/pedidos-importacion/internal/csv"
)

// ValidarArchivoCSV — validación estructural offline de un archivo CSV de pedidos
// (solo parser, sin catálogos ni base de datos). Escribe cada error de fila en ow
// y devuelve un resumen corto.
func ValidarArchivoCSV(filePath string, ow io.Writer) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("leer archivo: %w", err)
	}

	resultado, err := csvpedidos.ParsearPedidos(data)
	if err != nil {
		return "", err
	}

	for _, e := range resultado.Errores {
		if _, err := fmt.Fprintf(ow, "linea %d: %s\n", e.Linea, e.Motivo); err != nil {
			return "", fmt.Errorf("escribir salida: %w", err)
		}
	}

	return fmt.Sprintf("%d validas / %d con error", len(resultado.FilasValidas), len(resultado.Errores)), nil
}
