package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/epicorifa/rifa-api/internal/api/handler/v1/request"
	"github.com/epicorifa/rifa-api/internal/api/handler/v1/response"
	"github.com/epicorifa/rifa-api/internal/api/middleware"
	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/service"
)

type IntegrationService interface {
	SaveCode(ctx context.Context, codigo string, expira *time.Time, meta map[string]any, generadoPor string) (domain.Codigo, error)
	LogCall(ctx context.Context, entry domain.IntegrationLog)
	Health(ctx context.Context) error
}

type IntegrationHandler struct {
	svc             IntegrationService
	integrationName string
}

func NewIntegrationHandler(svc IntegrationService, integrationName string) *IntegrationHandler {
	return &IntegrationHandler{
		svc:             svc,
		integrationName: integrationName,
	}
}

// HandleSaveCode godoc
// @Summary      Store a partner-generated promo code
// @Tags         integration
// @Produce      json
// @Security     IntegrationKeyAuth
// @Param        request   body      request.SaveCodeRequest true "request body"
// @Success      201      {object}   response.SaveCode
// @Failure      400      {object}   response.IntegrationErr
// @Failure      401      {object}   response.IntegrationErr
// @Failure      409      {object}   response.IntegrationErr
// @Failure      500      {object}   response.IntegrationErr
// @Router       /integration/save-code [post]
func (h *IntegrationHandler) HandleSaveCode(ctx *gin.Context) {
	traceID := middleware.GetTraceID(ctx)

	req := request.SaveCodeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.renderErr(ctx, traceID, http.StatusBadRequest, "malformed request body")

		return
	}

	if err := req.Validate(); err != nil {
		h.renderErr(ctx, traceID, http.StatusBadRequest, err.Error())

		return
	}

	created, err := h.svc.SaveCode(ctx.Request.Context(), req.Codigo, req.Expiracion(), req.Meta, h.integrationName)
	if err != nil {
		if errors.Is(err, service.ErrCodigoExiste) {
			h.renderErr(ctx, traceID, http.StatusConflict, service.ErrCodigoExiste.Error())

			return
		}

		zap.L().Error("v1.HandleSaveCode -> h.svc.SaveCode",
			zap.String("trace_id", traceID),
			zap.Error(err),
		)
		h.renderErr(ctx, traceID, http.StatusInternalServerError, "internal error")

		return
	}

	h.audit(ctx, traceID, http.StatusCreated, "", created.Codigo)

	ctx.JSON(http.StatusCreated, response.SaveCode{
		Success:         true,
		Codigo:          created.Codigo,
		FechaGeneracion: created.FechaGeneracion.Format(time.RFC3339),
		TraceID:         traceID,
	})
}

// HandleHealth godoc
// @Summary      Partner-facing health probe
// @Tags         integration
// @Produce      json
// @Security     IntegrationKeyAuth
// @Success      200      {object}   response.IntegrationHealth
// @Failure      503      {object}   response.IntegrationHealth
// @Router       /integration/health [get]
func (h *IntegrationHandler) HandleHealth(ctx *gin.Context) {
	traceID := middleware.GetTraceID(ctx)

	status, database, statusCode := "ok", "up", http.StatusOK
	if err := h.svc.Health(ctx.Request.Context()); err != nil {
		status, database, statusCode = "degraded", "down", http.StatusServiceUnavailable
	}

	h.audit(ctx, traceID, statusCode, "", "")

	ctx.JSON(statusCode, response.IntegrationHealth{
		Success:   statusCode == http.StatusOK,
		Status:    status,
		Database:  database,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (h *IntegrationHandler) renderErr(ctx *gin.Context, traceID string, statusCode int, message string) {
	h.audit(ctx, traceID, statusCode, message, "")

	ctx.AbortWithStatusJSON(statusCode, response.IntegrationErr{
		Success: false,
		Error:   message,
		TraceID: traceID,
	})
}

func (h *IntegrationHandler) audit(ctx *gin.Context, traceID string, statusCode int, errorMessage, codigo string) {
	metadata := ""
	if codigo != "" {
		metadata = fmt.Sprintf(`{"codigo":%q}`, codigo)
	}

	h.svc.LogCall(ctx.Request.Context(), domain.IntegrationLog{
		TraceID:         traceID,
		Endpoint:        ctx.FullPath(),
		Method:          ctx.Request.Method,
		IntegrationName: h.integrationName,
		StatusCode:      statusCode,
		ErrorMessage:    errorMessage,
		Metadata:        metadata,
	})
}
