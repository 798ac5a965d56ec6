package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"

	"github.com/dinet/pedidos-importacion/internal/domain"
	"github.com/dinet/pedidos-importacion/internal/ports/mocks"
	rest "github.com/dinet/pedidos-importacion/internal/transport/http"
	"github.com/dinet/pedidos-importacion/pkg/httpx"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

const csvMinimo = "numero_pedido,cliente_id,fecha_entrega,estado,zona_id,requiere_refrigeracion\n" +
	"PED-1,CLI-1,2030-01-01,PENDIENTE,Z1,false\n"

func multipartCSV(t *testing.T, contenido string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "pedidos.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(contenido)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestCargarPedidos_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)

	want := domain.ResumenCarga{
		TotalProcesados:  1,
		Guardados:        1,
		ErroresPorFila:   []domain.ErrorFila{},
		ErroresAgrupados: map[string]int{},
	}
	svc.EXPECT().Cargar(gomock.Any(), gomock.Any(), "carga-1").Return(want, nil)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "", "")

	body, ct := multipartCSV(t, csvMinimo)
	req := httptest.NewRequest(http.MethodPost, "/pedidos/cargar", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set(rest.HeaderIdempotencia, "carga-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.ResumenCarga
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.TotalProcesados != 1 || got.Guardados != 1 || got.ConError != 0 {
		t.Fatalf("unexpected resumen: %+v", got)
	}
}

func TestCargarPedidos_SinClaveIdempotencia_400(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)
	svc.EXPECT().Cargar(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "", "")

	body, ct := multipartCSV(t, csvMinimo)
	req := httptest.NewRequest(http.MethodPost, "/pedidos/cargar", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
	var got httpx.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Code != "BAD_REQUEST" || !strings.Contains(got.Message, "Idempotency-Key") {
		t.Fatalf("unexpected envelope: %+v", got)
	}
	if got.CorrelationID == "" {
		t.Fatalf("envelope sin correlationId: %+v", got)
	}
}

func TestCargarPedidos_SinArchivo_400(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "", "")

	req := httptest.NewRequest(http.MethodPost, "/pedidos/cargar", http.NoBody)
	req.Header.Set(rest.HeaderIdempotencia, "carga-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCargarPedidos_ArchivoDemasiadoGrande_413(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)
	svc.EXPECT().Cargar(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	h := rest.NewHandler(svc, noopLogger{}, 16) // limite minusculo para el test
	r := rest.NewRouter(h, "", "")

	body, ct := multipartCSV(t, csvMinimo)
	req := httptest.NewRequest(http.MethodPost, "/pedidos/cargar", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set(rest.HeaderIdempotencia, "carga-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("want 413, got %d, body=%s", w.Code, w.Body.String())
	}
	var got httpx.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Code != "PAYLOAD_TOO_LARGE" {
		t.Fatalf("unexpected envelope: %+v", got)
	}
}

func TestCargarPedidos_ErrorDeServicio_500(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)

	svc.EXPECT().Cargar(gomock.Any(), gomock.Any(), "carga-1").
		Return(domain.ResumenCarga{}, errors.New("DB down"))

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "", "")

	body, ct := multipartCSV(t, csvMinimo)
	req := httptest.NewRequest(http.MethodPost, "/pedidos/cargar", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set(rest.HeaderIdempotencia, "carga-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestObtenerPedido_Encontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)

	want := &domain.Pedido{NumeroPedido: "PED-1", ClienteID: "CLI-1"}
	svc.EXPECT().ObtenerPedido(gomock.Any(), "PED-1").Return(want, nil)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "", "")

	req := httptest.NewRequest(http.MethodGet, "/pedidos/PED-1", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.Pedido
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.NumeroPedido != "PED-1" {
		t.Fatalf("unexpected pedido: %+v", got)
	}
}

func TestObtenerPedido_NoEncontrado_404(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)

	svc.EXPECT().ObtenerPedido(gomock.Any(), "missing").Return(nil, nil)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "", "")

	req := httptest.NewRequest(http.MethodGet, "/pedidos/missing", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func tokenHS256(t *testing.T, secreto string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "integrador",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	firmado, err := tok.SignedString([]byte(secreto))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return firmado
}

func TestAuthJWT_SinToken_401(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)
	svc.EXPECT().ObtenerPedido(gomock.Any(), gomock.Any()).Times(0)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "secreto", "")

	req := httptest.NewRequest(http.MethodGet, "/pedidos/PED-1", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestAuthJWT_SecretoEquivocado_401(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)
	svc.EXPECT().ObtenerPedido(gomock.Any(), gomock.Any()).Times(0)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "secreto", "")

	req := httptest.NewRequest(http.MethodGet, "/pedidos/PED-1", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+tokenHS256(t, "otro-secreto"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestAuthJWT_TokenValido_Pasa(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)

	svc.EXPECT().ObtenerPedido(gomock.Any(), "PED-1").Return(&domain.Pedido{NumeroPedido: "PED-1"}, nil)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "secreto", "")

	req := httptest.NewRequest(http.MethodGet, "/pedidos/PED-1", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+tokenHS256(t, "secreto"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCorrelationID_SePropaga(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)

	svc.EXPECT().ObtenerPedido(gomock.Any(), "PED-1").Return(&domain.Pedido{NumeroPedido: "PED-1"}, nil)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "", "")

	req := httptest.NewRequest(http.MethodGet, "/pedidos/PED-1", http.NoBody)
	req.Header.Set(httpx.HeaderCorrelationID, "cid-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(httpx.HeaderCorrelationID); got != "cid-123" {
		t.Fatalf("want cid-123 de vuelta, got %q", got)
	}
}

func TestPing_200(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "", "")

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
}

func TestMetrics_200(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCargaPedidosService(ctrl)

	h := rest.NewHandler(svc, noopLogger{}, 0)
	r := rest.NewRouter(h, "", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// el contenido cambia entre corridas, basta con que no venga vacio
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}
