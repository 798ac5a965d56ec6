package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dinet/pedidos-importacion/config"
	"github.com/dinet/pedidos-importacion/internal/kafka"
	"github.com/dinet/pedidos-importacion/internal/ports"
	"github.com/dinet/pedidos-importacion/internal/repo/postgres"
	rest "github.com/dinet/pedidos-importacion/internal/transport/http"
	"github.com/dinet/pedidos-importacion/internal/usecase"
	"github.com/dinet/pedidos-importacion/pkg/logger"
	"github.com/dinet/pedidos-importacion/pkg/metrics"
	"github.com/dinet/pedidos-importacion/pkg/telemetry"
	"github.com/dinet/pedidos-importacion/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — aplicación armada y sus interfaces externas.
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	gracefulTimeout time.Duration
}

// Cleanup — liberación de recursos (orden inverso al armado).
type Cleanup func()

// applyGinMode — fija el modo de gin según la cadena;
// valor desconocido → debug y advertencia en el log.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "GIN_MODE desconocido %q, fallback a debug", mode)
	}
}

// Bootstrap — arma las dependencias y devuelve la aplicación, la limpieza y un error.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Logger (modo dev/prod por configuración).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Registro de métricas (Prometheus).
	metrics.MustRegister()

	// Pool de Postgres.
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Trazas OTEL (si la configuración las habilita); por defecto no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "no se pudo configurar tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing habilitado service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Zona de referencia para "hoy" (decisión de negocio, no la hora local).
	zona, err := time.LoadLocation(cfg.Ingesta.ZonaHoraria)
	if err != nil {
		pool.Close()
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Adaptadores de salida y capa de dominio.
	catalogos := postgres.NewCatalogosConsulta(pool)
	repo := postgres.NewPedidosRepository(pool)
	idem := postgres.NewAlmacenIdempotencia(pool)
	validador := validate.NewValidadorPedido(catalogos, ports.RelojSistema{}, zona)

	// Publicador de eventos (opcional, solo con brokers configurados).
	var publicador ports.PublicadorEventos
	kafkaCfg := kafka.PublisherConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic}
	if kafkaCfg.Habilitado() {
		publicador = kafka.NewPublisher(kafkaCfg, logg)
		logg.Infof(ctx, "publicador kafka habilitado topic=%s", cfg.Kafka.Topic)
	}

	service := usecase.NewCargarPedidosService(validador, repo, idem, publicador, logg, cfg.Ingesta.TamanoLote)

	// Modo gin y router.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	if cfg.Auth.SecretoHMAC == "" {
		logg.Warnf(ctx, "autenticación JWT deshabilitada (AUTH_SECRETO_HMAC vacío)")
	}

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	httpHandler := rest.NewHandler(service, logg, cfg.HTTP.MaxUploadBytes)
	router := rest.NewRouter(httpHandler, cfg.Auth.SecretoHMAC, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Limpieza en orden inverso.
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if publicador != nil {
			if perr := publicador.Close(); perr != nil {
				logg.Warnf(ctx, "cerrar publicador kafka: %v", perr)
			}
		}
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — levanta el servidor HTTP; espera la cancelación del contexto o una
// falla de fondo y apaga el servidor con gracia.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Infof(ctx, "http server iniciando (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "apagado solicitado, iniciando graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "error de fondo: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "fallo en el shutdown del http server: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server detenido con gracia")
	}

	a.Logger.Infof(ctx, "servicio detenido")
	return nil
}
