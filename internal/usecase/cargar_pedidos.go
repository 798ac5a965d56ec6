package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	csvpedidos "github.com/dinet/pedidos-importacion/internal/csv"
	"github.com/dinet/pedidos-importacion/internal/domain"
	"github.com/dinet/pedidos-importacion/internal/ports"
	"github.com/dinet/pedidos-importacion/pkg/metrics"
)

// tamanoLoteDefault — tamaño de chunk de upsert cuando la configuración no lo fija.
const tamanoLoteDefault = 500

// CargarPedidosService — orquestador de la ingesta:
// hash del contenido → puerta de idempotencia → parseo → validación por fila →
// persistencia por lotes → resumen. Todo secuencial dentro de una carga.
type CargarPedidosService struct {
	validador  ports.ValidadorPedido
	repo       ports.PedidosRepositorio
	idem       ports.AlmacenIdempotencia
	publicador ports.PublicadorEventos // opcional; nil = sin eventos
	log        ports.Logger
	tamanoLote int
}

// Comprobación de que el servicio cumple el puerto consumido por HTTP.
var _ ports.CargaPedidosService = (*CargarPedidosService)(nil)

// NewCargarPedidosService — constructor DI. tamanoLote <= 0 usa el default (500).
func NewCargarPedidosService(
	validador ports.ValidadorPedido,
	repo ports.PedidosRepositorio,
	idem ports.AlmacenIdempotencia,
	publicador ports.PublicadorEventos,
	log ports.Logger,
	tamanoLote int,
) *CargarPedidosService {
	if tamanoLote <= 0 {
		tamanoLote = tamanoLoteDefault
	}
	return &CargarPedidosService{
		validador:  validador,
		repo:       repo,
		idem:       idem,
		publicador: publicador,
		log:        log,
		tamanoLote: tamanoLote,
	}
}

// Cargar — procesa el archivo completo con clave de idempotencia.
// Semántica de fallos:
//   - archivo ilegible o cabecera inválida → resumen, nunca error;
//   - fila inválida → un ErrorFila, la fila siguiente continúa;
//   - colisión de idempotencia → resumen vacío, no-op silencioso;
//   - fallo de persistencia o de catálogos → error (nunca resumen parcial).
func (s *CargarPedidosService) Cargar(ctx context.Context, csvBytes []byte, claveIdempotencia string) (domain.ResumenCarga, error) {
	inicio := time.Now()
	hash := sha256Hex(csvBytes)

	// Replay exacto de una carga ya registrada: no-op.
	if _, existe, err := s.idem.EstadoDe(ctx, claveIdempotencia, hash); err != nil {
		return domain.ResumenCarga{}, fmt.Errorf("consultar idempotencia: %w", err)
	} else if existe {
		s.log.Infof(ctx, "carga repetida clave=%s hash=%s", claveIdempotencia, hash)
		metrics.CargasProcesadas.WithLabelValues("duplicada").Inc()
		return domain.ResumenVacio(), nil
	}

	// Reclamo atómico de la pareja; perderlo ante una carga concurrente no es un error.
	creado, err := s.idem.RegistrarInicio(ctx, claveIdempotencia, hash)
	if err != nil {
		return domain.ResumenCarga{}, fmt.Errorf("registrar inicio: %w", err)
	}
	if !creado {
		s.log.Infof(ctx, "carga ya reclamada clave=%s hash=%s", claveIdempotencia, hash)
		metrics.CargasProcesadas.WithLabelValues("duplicada").Inc()
		return domain.ResumenVacio(), nil
	}

	parseado, err := csvpedidos.ParsearPedidos(csvBytes)
	if err != nil {
		s.log.Warnf(ctx, "csv ilegible clave=%s: %v", claveIdempotencia, err)
		metrics.CargasProcesadas.WithLabelValues("ilegible").Inc()
		return domain.ResumenCarga{
			ConError:         1,
			ErroresPorFila:   []domain.ErrorFila{{Linea: 1, Motivo: domain.MotivoCSVIlegible}},
			ErroresAgrupados: map[string]int{domain.MotivoCSVIlegible: 1},
		}, nil
	}

	errores := append([]domain.ErrorFila{}, parseado.Errores...)

	// Validación de negocio fila a fila, en orden de línea; gana la primera regla que falla.
	var aGuardar []domain.Pedido
	for _, fila := range parseado.FilasValidas {
		codigos, err := s.validador.Validar(ctx, &fila.Pedido)
		if err != nil {
			return domain.ResumenCarga{}, fmt.Errorf("validar linea %d: %w", fila.Linea, err)
		}
		if len(codigos) > 0 {
			errores = append(errores, domain.ErrorFila{Linea: fila.Linea, Motivo: codigos[0]})
			continue
		}
		aGuardar = append(aGuardar, fila.Pedido)
	}

	// Persistencia por chunks de tamaño fijo, en orden de entrada.
	// Un chunk fallido es fatal para toda la carga: integridad antes que resumen parcial.
	guardados := 0
	for i := 0; i < len(aGuardar); i += s.tamanoLote {
		fin := i + s.tamanoLote
		if fin > len(aGuardar) {
			fin = len(aGuardar)
		}
		lote := aGuardar[i:fin]
		if err := s.repo.UpsertPorLote(ctx, lote); err != nil {
			return domain.ResumenCarga{}, fmt.Errorf("upsert lote [%d:%d]: %w", i, fin, err)
		}
		metrics.LotesUpsert.Inc()
		guardados += len(lote)
	}

	resumen := construirResumen(parseado, errores, guardados)

	metrics.CargasProcesadas.WithLabelValues("completada").Inc()
	metrics.FilasProcesadas.WithLabelValues("guardada").Add(float64(guardados))
	metrics.FilasProcesadas.WithLabelValues("con_error").Add(float64(len(errores)))
	for _, e := range errores {
		metrics.ErroresPorMotivo.WithLabelValues(e.Motivo).Inc()
	}
	metrics.DuracionCarga.Observe(time.Since(inicio).Seconds())

	s.log.Infof(ctx, "carga completada clave=%s total=%d guardados=%d con_error=%d en=%s",
		claveIdempotencia, resumen.TotalProcesados, resumen.Guardados, resumen.ConError, time.Since(inicio))

	s.publicarResumen(ctx, claveIdempotencia, hash, resumen)
	return resumen, nil
}

// ObtenerPedido — lectura por clave natural; (nil, nil) si no existe.
func (s *CargarPedidosService) ObtenerPedido(ctx context.Context, numeroPedido string) (*domain.Pedido, error) {
	return s.repo.ObtenerPorNumero(ctx, numeroPedido)
}

// construirResumen — totales y tabla de frecuencias.
// TotalProcesados cuenta filas de datos (línea >= 2): los errores sintéticos de
// archivo (cabecera, CSV ilegible) aportan a ConError pero no al total.
func construirResumen(parseado csvpedidos.Resultado, errores []domain.ErrorFila, guardados int) domain.ResumenCarga {
	total := len(parseado.FilasValidas)
	for _, e := range parseado.Errores {
		if e.Linea >= 2 {
			total++
		}
	}

	agrupados := make(map[string]int, len(errores))
	for _, e := range errores {
		agrupados[e.Motivo]++
	}

	return domain.ResumenCarga{
		TotalProcesados:  total,
		Guardados:        guardados,
		ConError:         len(errores),
		ErroresPorFila:   errores,
		ErroresAgrupados: agrupados,
	}
}

// publicarResumen — notificación best-effort; un fallo del broker no afecta la carga.
func (s *CargarPedidosService) publicarResumen(ctx context.Context, clave, hash string, resumen domain.ResumenCarga) {
	if s.publicador == nil {
		return
	}
	if err := s.publicador.PublicarResumen(ctx, ports.NuevoEventoCarga(clave, hash, resumen)); err != nil {
		s.log.Warnf(ctx, "publicar resumen clave=%s: %v", clave, err)
	}
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
