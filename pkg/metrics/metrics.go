package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CargasProcesadas = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cargas_procesadas_total",
			Help: "Cargas de CSV procesadas por resultado",
		},
		[]string{"resultado"}, // completada|duplicada|ilegible
	)
	FilasProcesadas = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filas_procesadas_total",
			Help: "Filas de pedido procesadas por resultado",
		},
		[]string{"resultado"}, // guardada|con_error
	)
	ErroresPorMotivo = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errores_fila_total",
			Help: "Errores de fila acumulados por motivo",
		},
		[]string{"motivo"},
	)
)

var (
	LotesUpsert = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lotes_upsert_total",
			Help: "Lotes de upsert enviados al repositorio",
		},
	)
	DuracionCarga = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "carga_duracion_segundos",
			Help:    "Duración de una carga completa de CSV",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var registerOnce sync.Once

// MustRegister registra los colectores en el registro global; seguro de llamar
// más de una vez.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(CargasProcesadas, FilasProcesadas, ErroresPorMotivo, LotesUpsert, DuracionCarga)
	})
}
