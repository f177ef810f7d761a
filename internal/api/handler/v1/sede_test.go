package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/service"
)

type fakeSedeService struct {
	sedes []domain.Sede
	sede  domain.Sede
	err   error

	gotOnlyActive bool
	gotSede       domain.Sede
	gotID         uint
}

func (f *fakeSedeService) CreateSede(_ context.Context, sede domain.Sede) (domain.Sede, error) {
	f.gotSede = sede
	return f.sede, f.err
}

func (f *fakeSedeService) GetSedes(_ context.Context, onlyActive bool) ([]domain.Sede, error) {
	f.gotOnlyActive = onlyActive
	return f.sedes, f.err
}

func (f *fakeSedeService) UpdateSede(_ context.Context, sede domain.Sede) (domain.Sede, error) {
	f.gotSede = sede
	return f.sede, f.err
}

func (f *fakeSedeService) DeactivateSede(_ context.Context, id uint) (domain.Sede, error) {
	f.gotID = id
	return f.sede, f.err
}

func newSedeRouter(svc SedeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewSedeHandler(svc)
	router.GET("/sedes", handler.HandleGetActiveSedes)
	router.GET("/admin/sedes", handler.HandleListSedes)
	router.POST("/admin/sedes", handler.HandleCreateSede)
	router.PUT("/admin/sedes/:sedeID", handler.HandleUpdateSede)
	router.DELETE("/admin/sedes/:sedeID", handler.HandleDeleteSede)

	return router
}

func TestHandleGetActiveSedes(t *testing.T) {
	svc := &fakeSedeService{sedes: []domain.Sede{
		{ID: 1, Nombre: "Centro", Ciudad: "Bogotá", Estado: domain.SedeActiva},
	}}
	router := newSedeRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sedes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.gotOnlyActive)

	var body struct {
		Success bool          `json:"success"`
		Sedes   []domain.Sede `json:"sedes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Sedes, 1)
	assert.Equal(t, "Centro", body.Sedes[0].Nombre)
}

func TestHandleListSedes_IncludesInactive(t *testing.T) {
	svc := &fakeSedeService{}
	router := newSedeRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/sedes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, svc.gotOnlyActive)
}

func TestHandleCreateSede(t *testing.T) {
	t.Run("created active by default", func(t *testing.T) {
		svc := &fakeSedeService{sede: domain.Sede{ID: 2, Nombre: "Norte"}}
		router := newSedeRouter(svc)

		w := postJSON(router, "/admin/sedes",
			`{"nombre":"Norte","direccion":"Calle 100","ciudad":"Bogotá"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, domain.SedeActiva, svc.gotSede.Estado)
	})

	t.Run("missing fields are a 400", func(t *testing.T) {
		router := newSedeRouter(&fakeSedeService{})

		w := postJSON(router, "/admin/sedes", `{"nombre":"Norte"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleUpdateSede(t *testing.T) {
	t.Run("unknown id is a 404", func(t *testing.T) {
		router := newSedeRouter(&fakeSedeService{err: service.ErrSedeNoEncontrada})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/admin/sedes/99",
			strings.NewReader(`{"nombre":"Norte","direccion":"Calle 100","ciudad":"Bogotá","estado":"activa"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		router := newSedeRouter(&fakeSedeService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/admin/sedes/abc",
			strings.NewReader(`{"nombre":"Norte","direccion":"Calle 100","ciudad":"Bogotá","estado":"activa"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleDeleteSede(t *testing.T) {
	svc := &fakeSedeService{sede: domain.Sede{ID: 3, Estado: domain.SedeInactiva}}
	router := newSedeRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/sedes/3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), svc.gotID)
	assert.Contains(t, w.Body.String(), domain.SedeInactiva)
}
