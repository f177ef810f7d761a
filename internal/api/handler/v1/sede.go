package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/epicorifa/rifa-api/internal/api/handler/v1/request"
	"github.com/epicorifa/rifa-api/internal/api/handler/v1/response"
	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/service"
)

var errSedeIDInvalido = errors.New("identificador de sede inválido")

type SedeService interface {
	CreateSede(ctx context.Context, sede domain.Sede) (domain.Sede, error)
	GetSedes(ctx context.Context, onlyActive bool) ([]domain.Sede, error)
	UpdateSede(ctx context.Context, sede domain.Sede) (domain.Sede, error)
	DeactivateSede(ctx context.Context, id uint) (domain.Sede, error)
}

type SedeHandler struct {
	svc SedeService
}

func NewSedeHandler(svc SedeService) *SedeHandler {
	return &SedeHandler{
		svc: svc,
	}
}

// HandleGetActiveSedes godoc
// @Summary      Active venues for the registration form
// @Tags         sedes
// @Produce      json
// @Success      200      {object}   response.Sedes
// @Failure      500      {object}   response.Err
// @Router       /sedes [get]
func (h *SedeHandler) HandleGetActiveSedes(ctx *gin.Context) {
	h.renderSedes(ctx, true)
}

// HandleListSedes godoc
// @Summary      All venues, active and inactive
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200      {object}   response.Sedes
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/sedes [get]
func (h *SedeHandler) HandleListSedes(ctx *gin.Context) {
	h.renderSedes(ctx, false)
}

func (h *SedeHandler) renderSedes(ctx *gin.Context, onlyActive bool) {
	sedes, err := h.svc.GetSedes(ctx.Request.Context(), onlyActive)
	if err != nil {
		err = fmt.Errorf("v1.renderSedes -> h.svc.GetSedes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Sedes{
		Success: true,
		Sedes:   sedes,
	})
}

// HandleCreateSede godoc
// @Summary      Create a venue
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request   body      request.CreateSedeRequest true "request body"
// @Success      201      {object}   response.SedeDetail
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/sedes [post]
func (h *SedeHandler) HandleCreateSede(ctx *gin.Context) {
	req := request.CreateSedeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sede, err := h.svc.CreateSede(ctx.Request.Context(), domain.Sede{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Ciudad:    req.Ciudad,
		Estado:    domain.SedeActiva,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateSede -> h.svc.CreateSede -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.SedeDetail{
		Success: true,
		Sede:    sede,
	})
}

// HandleUpdateSede godoc
// @Summary      Update a venue
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Param        sedeID   path       int true "sede id"
// @Param        request  body       request.UpdateSedeRequest true "request body"
// @Success      200      {object}   response.SedeDetail
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/sedes/{sedeID} [put]
func (h *SedeHandler) HandleUpdateSede(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("sedeID"), 10, 32)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errSedeIDInvalido))

		return
	}

	req := request.UpdateSedeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sede, err := h.svc.UpdateSede(ctx.Request.Context(), domain.Sede{
		ID:        uint(id),
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Ciudad:    req.Ciudad,
		Estado:    req.Estado,
	})
	if err != nil {
		if errors.Is(err, service.ErrSedeNoEncontrada) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrSedeNoEncontrada))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateSede -> h.svc.UpdateSede -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.SedeDetail{
		Success: true,
		Sede:    sede,
	})
}

// HandleDeleteSede godoc
// @Summary      Deactivate a venue
// @Description  Venues referenced by clients are never hard-deleted; the
// @Description  venue flips to inactiva and disappears from the public list.
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Param        sedeID   path       int true "sede id"
// @Success      200      {object}   response.SedeDetail
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/sedes/{sedeID} [delete]
func (h *SedeHandler) HandleDeleteSede(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("sedeID"), 10, 32)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errSedeIDInvalido))

		return
	}

	sede, err := h.svc.DeactivateSede(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrSedeNoEncontrada) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrSedeNoEncontrada))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteSede -> h.svc.DeactivateSede -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.SedeDetail{
		Success: true,
		Sede:    sede,
	})
}
