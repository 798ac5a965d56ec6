// Paquete csv — decodificación del CSV de pedidos con aislamiento de errores
// por fila: una fila malformada nunca aborta el lote.
package csv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/dinet/pedidos-importacion/internal/domain"
)

// ErrIlegible — el flujo de bytes no pudo decodificarse como texto delimitado.
// El orquestador lo reporta como resumen, no como fallo hacia el transporte.
var ErrIlegible = errors.New("csv ilegible")

// Columnas requeridas, en el orden canónico (el archivo puede traerlas en otro orden).
var cabecera = []string{
	"numero_pedido", "cliente_id", "fecha_entrega", "estado", "zona_id", "requiere_refrigeracion",
}

var patronNumeroPedido = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// FilaValida — candidato parseado junto con su línea original en el archivo.
type FilaValida struct {
	Linea  int
	Pedido domain.Pedido
}

// Resultado — filas válidas y errores por fila, ambos en orden de aparición.
// La cabecera cuenta como línea 1; la primera fila de datos es la línea 2.
type Resultado struct {
	FilasValidas []FilaValida
	Errores      []domain.ErrorFila
}

// ParsearPedidos — decodifica los bytes en candidatos tipados o códigos de error por fila.
// Cada fila produce a lo sumo un error y es independiente del resto.
func ParsearPedidos(data []byte) (Resultado, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // el ancho se valida a mano, fila por fila

	primera, err := reader.Read()
	if errors.Is(err, io.EOF) {
		// archivo vacío: no hay cabecera que validar
		return resultadoCabeceraInvalida(domain.MotivoCabeceraInvalida), nil
	}
	if err != nil {
		return Resultado{}, fmt.Errorf("%w: %v", ErrIlegible, err)
	}

	indices, motivo := validarCabecera(primera)
	if motivo != "" {
		return resultadoCabeceraInvalida(motivo), nil
	}

	var resultado Resultado
	linea := 1 // cabecera
	for {
		registro, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		linea++
		if err != nil {
			// error de parseo local a la fila (comillas sueltas, etc.)
			resultado.Errores = append(resultado.Errores, domain.ErrorFila{Linea: linea, Motivo: domain.MotivoErrorDesconocido})
			continue
		}

		pedido, motivo := parsearFila(registro, indices)
		if motivo != "" {
			resultado.Errores = append(resultado.Errores, domain.ErrorFila{Linea: linea, Motivo: motivo})
			continue
		}
		resultado.FilasValidas = append(resultado.FilasValidas, FilaValida{Linea: linea, Pedido: pedido})
	}

	return resultado, nil
}

// validarCabecera — exige exactamente las seis columnas, en cualquier orden,
// todas presentes y sin extras. Devuelve el índice de cada columna requerida.
func validarCabecera(campos []string) (map[string]int, string) {
	indices := make(map[string]int, len(campos))
	for i, c := range campos {
		indices[strings.TrimSpace(c)] = i
	}
	if len(indices) != len(cabecera) {
		return nil, domain.MotivoCabeceraInvalida
	}
	for _, col := range cabecera {
		if _, ok := indices[col]; !ok {
			return nil, fmt.Sprintf("%s: falta '%s'", domain.MotivoCabeceraInvalida, col)
		}
	}
	return indices, ""
}

// parsearFila — aplica los chequeos estructurales en orden fijo;
// devuelve el primer motivo que falla (motivo vacío = fila válida).
func parsearFila(registro []string, indices map[string]int) (domain.Pedido, string) {
	// filas más cortas que la cabecera no se pueden mapear por nombre
	for _, col := range cabecera {
		if indices[col] >= len(registro) {
			return domain.Pedido{}, domain.MotivoErrorDesconocido
		}
	}

	valores := make(map[string]string, len(cabecera))
	for _, col := range cabecera {
		v := strings.TrimSpace(registro[indices[col]])
		if v == "" {
			return domain.Pedido{}, domain.MotivoCampoFaltaPrefijo + col
		}
		valores[col] = v
	}

	fecha, err := time.Parse("2006-01-02", valores["fecha_entrega"])
	if err != nil {
		return domain.Pedido{}, domain.MotivoFechaFormato
	}

	estado, err := domain.ParseEstado(valores["estado"])
	if err != nil {
		return domain.Pedido{}, domain.MotivoEstadoInvalido
	}

	var requiere bool
	switch {
	case strings.EqualFold(valores["requiere_refrigeracion"], "true"):
		requiere = true
	case strings.EqualFold(valores["requiere_refrigeracion"], "false"):
		requiere = false
	default:
		return domain.Pedido{}, domain.MotivoBooleanoInvalido
	}

	if !patronNumeroPedido.MatchString(valores["numero_pedido"]) {
		return domain.Pedido{}, domain.MotivoNumeroInvalido
	}

	return domain.Pedido{
		NumeroPedido:          valores["numero_pedido"],
		ClienteID:             valores["cliente_id"],
		FechaEntrega:          fecha,
		Estado:                estado,
		ZonaID:                valores["zona_id"],
		RequiereRefrigeracion: requiere,
	}, ""
}

func resultadoCabeceraInvalida(motivo string) Resultado {
	return Resultado{
		Errores: []domain.ErrorFila{{Linea: 1, Motivo: motivo}},
	}
}
