package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicorifa/rifa-api/internal/api/middleware"
	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/service"
)

type fakeIntegrationService struct {
	created   domain.Codigo
	saveErr   error
	healthErr error

	gotCodigo string
	gotExpira *time.Time
	gotMeta   map[string]any
	logged    []domain.IntegrationLog
}

func (f *fakeIntegrationService) SaveCode(_ context.Context, codigo string, expira *time.Time, meta map[string]any, _ string) (domain.Codigo, error) {
	f.gotCodigo = codigo
	f.gotExpira = expira
	f.gotMeta = meta
	return f.created, f.saveErr
}

func (f *fakeIntegrationService) LogCall(_ context.Context, entry domain.IntegrationLog) {
	f.logged = append(f.logged, entry)
}

func (f *fakeIntegrationService) Health(context.Context) error {
	return f.healthErr
}

// newIntegrationRouter injects a fixed trace id, standing in for the gate.
func newIntegrationRouter(svc IntegrationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewIntegrationHandler(svc, "epico")
	gated := router.Group("/", func(ctx *gin.Context) {
		ctx.Set(middleware.TraceIDKey, "trace-123")
	})
	gated.POST("/integration/save-code", handler.HandleSaveCode)
	gated.GET("/integration/health", handler.HandleHealth)

	return router
}

func TestHandleSaveCode(t *testing.T) {
	t.Run("stores the code and echoes the trace id", func(t *testing.T) {
		svc := &fakeIntegrationService{created: domain.Codigo{
			Codigo:          "XYZ789",
			FechaGeneracion: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
		}}
		router := newIntegrationRouter(svc)

		w := postJSON(router, "/integration/save-code",
			`{"codigo":"xyz789","fecha_expiracion":"2026-12-31T23:59:59Z","meta":{"campaign":"navidad"}}`)

		require.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Success         bool   `json:"success"`
			Codigo          string `json:"codigo"`
			FechaGeneracion string `json:"fecha_generacion"`
			TraceID         string `json:"trace_id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "XYZ789", body.Codigo)
		assert.Equal(t, "2026-06-01T10:00:00Z", body.FechaGeneracion)
		assert.Equal(t, "trace-123", body.TraceID)

		assert.Equal(t, "XYZ789", svc.gotCodigo)
		require.NotNil(t, svc.gotExpira)
		assert.Equal(t, map[string]any{"campaign": "navidad"}, svc.gotMeta)

		require.Len(t, svc.logged, 1)
		assert.Equal(t, http.StatusCreated, svc.logged[0].StatusCode)
		assert.Equal(t, "trace-123", svc.logged[0].TraceID)
		assert.Contains(t, svc.logged[0].Metadata, "XYZ789")
	})

	t.Run("duplicate is a 409 and audited", func(t *testing.T) {
		svc := &fakeIntegrationService{saveErr: service.ErrCodigoExiste}
		router := newIntegrationRouter(svc)

		w := postJSON(router, "/integration/save-code", `{"codigo":"XYZ789"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"trace_id":"trace-123"`)

		require.Len(t, svc.logged, 1)
		assert.Equal(t, http.StatusConflict, svc.logged[0].StatusCode)
	})

	t.Run("bad code format is a 400 and audited", func(t *testing.T) {
		svc := &fakeIntegrationService{}
		router := newIntegrationRouter(svc)

		w := postJSON(router, "/integration/save-code", `{"codigo":"x"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.Len(t, svc.logged, 1)
		assert.Equal(t, http.StatusBadRequest, svc.logged[0].StatusCode)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		svc := &fakeIntegrationService{}
		router := newIntegrationRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/integration/save-code", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleIntegrationHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		svc := &fakeIntegrationService{}
		router := newIntegrationRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/integration/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"up"`)
		require.Len(t, svc.logged, 1)
	})

	t.Run("database down is a 503", func(t *testing.T) {
		svc := &fakeIntegrationService{healthErr: assert.AnError}
		router := newIntegrationRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/integration/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"down"`)
	})
}
