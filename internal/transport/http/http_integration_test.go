//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dinet/pedidos-importacion/internal/domain"
	"github.com/dinet/pedidos-importacion/internal/ports"
	pgrepo "github.com/dinet/pedidos-importacion/internal/repo/postgres"
	"github.com/dinet/pedidos-importacion/internal/testutil"
	rest "github.com/dinet/pedidos-importacion/internal/transport/http"
	"github.com/dinet/pedidos-importacion/internal/usecase"
	"github.com/dinet/pedidos-importacion/pkg/logger"
	"github.com/dinet/pedidos-importacion/pkg/validate"
)

// pila completa: Postgres real, adaptadores reales, sin Kafka.
func arrancarServidor(t *testing.T, ctx context.Context) (*httptest.Server, *pgrepo.PedidosRepository, *testutil.PGContainer) {
	t.Helper()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	repo := pgrepo.NewPedidosRepository(pg.Pool)
	cat := pgrepo.NewCatalogosConsulta(pg.Pool)
	idem := pgrepo.NewAlmacenIdempotencia(pg.Pool)
	validador := validate.NewValidadorPedido(cat, ports.RelojSistema{}, nil)

	svc := usecase.NewCargarPedidosService(validador, repo, idem, nil, logg, 0)

	h := rest.NewHandler(svc, logg, 0)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ts, repo, pg
}

func subirCSV(t *testing.T, ts *httptest.Server, clave, contenido string) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "pedidos.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(contenido))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/pedidos/cargar", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if clave != "" {
		req.Header.Set(rest.HeaderIdempotencia, clave)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// 1) Carga mixta: fila válida guardada, fila con zona desconocida reportada
func TestHTTP_CargarPedidos_Mixto_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	ts, repo, pg := arrancarServidor(t, ctx)

	require.NoError(t, testutil.SeedCliente(ctx, pg.Pool, "CLI-1", true))
	require.NoError(t, testutil.SeedZona(ctx, pg.Pool, "ZONA-N", true))

	csv := "numero_pedido,cliente_id,fecha_entrega,estado,zona_id,requiere_refrigeracion\n" +
		"PED-A,CLI-1,2031-01-01,PENDIENTE,ZONA-N,false\n" +
		"PED-B,CLI-1,2031-01-01,PENDIENTE,ZONA-X,false\n"

	resp := subirCSV(t, ts, "carga-mixta", csv)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var resumen domain.ResumenCarga
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&resumen))
	require.Equal(t, 2, resumen.TotalProcesados)
	require.Equal(t, 1, resumen.Guardados)
	require.Equal(t, 1, resumen.ConError)
	require.Len(t, resumen.ErroresPorFila, 1)
	require.Equal(t, 3, resumen.ErroresPorFila[0].Linea)
	require.Equal(t, domain.MotivoZonaInvalida, resumen.ErroresPorFila[0].Motivo)
	require.Equal(t, 1, resumen.ErroresAgrupados[domain.MotivoZonaInvalida])

	got, err := repo.ObtenerPorNumero(ctx, "PED-A")
	require.NoError(t, err)
	require.NotNil(t, got)

	noGuardado, err := repo.ObtenerPorNumero(ctx, "PED-B")
	require.NoError(t, err)
	require.Nil(t, noGuardado)
}

// 2) Replay exacto: misma clave y mismo archivo → resumen vacío, sin reprocesar
func TestHTTP_CargarPedidos_Replay_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	ts, _, pg := arrancarServidor(t, ctx)

	require.NoError(t, testutil.SeedCliente(ctx, pg.Pool, "CLI-1", true))
	require.NoError(t, testutil.SeedZona(ctx, pg.Pool, "ZONA-N", true))

	csv := "numero_pedido,cliente_id,fecha_entrega,estado,zona_id,requiere_refrigeracion\n" +
		"PED-R,CLI-1,2031-01-01,PENDIENTE,ZONA-N,false\n"

	resp1 := subirCSV(t, ts, "carga-replay", csv)
	defer resp1.Body.Close()
	require.Equal(t, http.StatusOK, resp1.StatusCode)

	var primera domain.ResumenCarga
	require.NoError(t, json.NewDecoder(resp1.Body).Decode(&primera))
	require.Equal(t, 1, primera.Guardados)

	resp2 := subirCSV(t, ts, "carga-replay", csv)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var segunda domain.ResumenCarga
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&segunda))
	require.Zero(t, segunda.TotalProcesados)
	require.Zero(t, segunda.Guardados)
	require.Zero(t, segunda.ConError)
}

// 3) GET /pedidos/:numero sobre lo cargado; 404 para lo inexistente
func TestHTTP_ObtenerPedido_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	ts, _, pg := arrancarServidor(t, ctx)

	require.NoError(t, testutil.SeedCliente(ctx, pg.Pool, "CLI-1", true))
	require.NoError(t, testutil.SeedZona(ctx, pg.Pool, "ZONA-N", true))

	csv := "numero_pedido,cliente_id,fecha_entrega,estado,zona_id,requiere_refrigeracion\n" +
		"PED-GET,CLI-1,2031-01-01,CONFIRMADO,ZONA-N,true\n"

	resp := subirCSV(t, ts, "carga-get", csv)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respGet, err := http.Get(ts.URL + "/pedidos/PED-GET")
	require.NoError(t, err)
	defer respGet.Body.Close()
	require.Equal(t, http.StatusOK, respGet.StatusCode)

	var got domain.Pedido
	require.NoError(t, json.NewDecoder(respGet.Body).Decode(&got))
	require.Equal(t, "PED-GET", got.NumeroPedido)
	require.Equal(t, domain.EstadoConfirmado, got.Estado)
	require.True(t, got.RequiereRefrigeracion)

	resp404, err := http.Get(ts.URL + "/pedidos/PED-NO-EXISTE")
	require.NoError(t, err)
	defer resp404.Body.Close()
	require.Equal(t, http.StatusNotFound, resp404.StatusCode)
}
