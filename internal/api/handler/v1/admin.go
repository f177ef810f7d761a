package v1

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epicorifa/rifa-api/internal/api/handler/v1/request"
	"github.com/epicorifa/rifa-api/internal/api/handler/v1/response"
	"github.com/epicorifa/rifa-api/internal/api/middleware"
	"github.com/epicorifa/rifa-api/internal/config"
	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/pkg/jwthelper"
	"github.com/epicorifa/rifa-api/internal/service"
)

const (
	adminCookieMaxAge = int(2 * time.Hour / time.Second)

	defaultPageSize = 20
	maxPageSize     = 100

	// Export is unpaginated; the cap only guards against a runaway table.
	exportLimit = 100000
)

type AdminService interface {
	Login(ctx context.Context, usuario, password string) (domain.AdminUser, error)
	GetConfig(ctx context.Context) (domain.RifaConfig, error)
	UpdateEstado(ctx context.Context, estado string) error
	Dashboard(ctx context.Context) (domain.DashboardStats, domain.MetricasMensuales, error)
	ListClientes(ctx context.Context, filter domain.ClienteFilter) (domain.ClientePage, error)
	DesignateWinner(ctx context.Context, numeroRifa string) (domain.Ganador, error)
	ResetRaffle(ctx context.Context, adminID uint, password string) (domain.ResetResult, error)
}

type AdminHandler struct {
	conf *config.APIConfig
	svc  AdminService
}

func NewAdminHandler(conf *config.APIConfig, svc AdminService) *AdminHandler {
	return &AdminHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Authenticate an internal admin user
// @Tags         admin
// @Produce      json
// @Param        request   body      request.AdminLoginRequest true "request body"
// @Success      200      {object}   response.AdminLogin
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/login [post]
func (h *AdminHandler) HandleLogin(ctx *gin.Context) {
	req := request.AdminLoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.Login(ctx.Request.Context(), req.Usuario, req.Contrasena)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrCredencialesInvalidas))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateAdminToken([]byte(h.conf.JWTSigningKey), admin.ID, admin.Usuario, admin.Rol)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateAdminToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AdminCookieName, token, adminCookieMaxAge, "/", "", h.conf.SecureCookies, true)

	ctx.JSON(http.StatusOK, response.AdminLogin{
		Success: true,
		Admin: response.AdminPublico{
			ID:      admin.ID,
			Usuario: admin.Usuario,
			Rol:     admin.Rol,
		},
		Token: token,
	})
}

// HandleLogout clears the admin cookie. The bearer token, if any, simply
// expires on its own.
func (h *AdminHandler) HandleLogout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.AdminCookieName, "", -1, "/", "", h.conf.SecureCookies, true)

	ctx.JSON(http.StatusOK, response.Mensaje{Success: true, Message: "sesión cerrada"})
}

// HandleDashboard godoc
// @Summary      Aggregate statistics for the admin dashboard
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200      {object}   response.Dashboard
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/dashboard [get]
func (h *AdminHandler) HandleDashboard(ctx *gin.Context) {
	stats, metricas, err := h.svc.Dashboard(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleDashboard -> h.svc.Dashboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Dashboard{
		Estadisticas:      stats,
		MetricasMensuales: metricas,
	})
}

// HandleListClientes godoc
// @Summary      List registered clients with pagination and search
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Param        page     query      int    false "page number"
// @Param        limit    query      int    false "page size"
// @Param        search   query      string false "matches nombre, apellidos and correo"
// @Param        sede_id  query      int    false "restrict to one sede"
// @Success      200      {object}   domain.ClientePage
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/clientes [get]
func (h *AdminHandler) HandleListClientes(ctx *gin.Context) {
	filter := clienteFilterFromQuery(ctx)

	page, err := h.svc.ListClientes(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListClientes -> h.svc.ListClientes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleExportClientes godoc
// @Summary      Export the filtered client listing as CSV
// @Tags         admin
// @Produce      text/csv
// @Security     ApiKeyAuth
// @Param        search   query      string false "matches nombre, apellidos and correo"
// @Param        sede_id  query      int    false "restrict to one sede"
// @Success      200      {string}   string "CSV attachment"
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/clientes/export [get]
func (h *AdminHandler) HandleExportClientes(ctx *gin.Context) {
	filter := clienteFilterFromQuery(ctx)
	filter.Page = 1
	filter.Limit = exportLimit

	page, err := h.svc.ListClientes(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleExportClientes -> h.svc.ListClientes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	filename := fmt.Sprintf("clientes_%s.csv", time.Now().Format("20060102"))
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Status(http.StatusOK)

	w := csv.NewWriter(ctx.Writer)
	_ = w.Write([]string{"ID", "Nombre", "Correo", "Teléfono", "Sede", "Números", "Fecha Registro"})
	for _, cliente := range page.Clientes {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(cliente.ID), 10),
			cliente.Nombre,
			cliente.Correo,
			cliente.Telefono,
			cliente.Sede,
			strings.Join(cliente.Codigos, " "),
			cliente.FechaRegistro.Format(time.RFC3339),
		})
	}
	w.Flush()
}

// HandleGetConfig godoc
// @Summary      Current raffle configuration
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200      {object}   domain.RifaConfig
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/config [get]
func (h *AdminHandler) HandleGetConfig(ctx *gin.Context) {
	conf, err := h.svc.GetConfig(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetConfig -> h.svc.GetConfig -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, conf)
}

// HandleUpdateConfig godoc
// @Summary      Change the raffle state
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request   body      request.UpdateConfigRequest true "request body"
// @Success      200      {object}   domain.RifaConfig
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/config [put]
func (h *AdminHandler) HandleUpdateConfig(ctx *gin.Context) {
	req := request.UpdateConfigRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.UpdateEstado(ctx.Request.Context(), req.Estado); err != nil {
		if errors.Is(err, service.ErrEstadoInvalido) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrEstadoInvalido))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateConfig -> h.svc.UpdateEstado -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	conf, err := h.svc.GetConfig(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateConfig -> h.svc.GetConfig -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, conf)
}

// HandleDesignateWinner godoc
// @Summary      Look up the holder of a raffle number and record it as winner
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request   body      request.DesignateWinnerRequest true "request body"
// @Success      200      {object}   response.Ganador
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/ganador [post]
func (h *AdminHandler) HandleDesignateWinner(ctx *gin.Context) {
	req := request.DesignateWinnerRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ganador, err := h.svc.DesignateWinner(ctx.Request.Context(), req.NumeroGanador)
	if err != nil {
		if errors.Is(err, service.ErrGanadorNoHallado) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrGanadorNoHallado))

			return
		}

		err = fmt.Errorf("v1.HandleDesignateWinner -> h.svc.DesignateWinner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Ganador{
		Success: true,
		Ganador: ganador,
	})
}

// HandleResetRaffle godoc
// @Summary      Reset the raffle for a new cycle
// @Tags         admin
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request   body      request.ResetRaffleRequest true "request body"
// @Success      200      {object}   response.Reset
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/reset-raffle [post]
func (h *AdminHandler) HandleResetRaffle(ctx *gin.Context) {
	req := request.ResetRaffleRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	claims := middleware.GetClaims(ctx)
	if claims == nil {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("autenticación requerida")))

		return
	}

	result, err := h.svc.ResetRaffle(ctx.Request.Context(), claims.SubjectID, req.AdminPassword)
	if err != nil {
		if errors.Is(err, service.ErrPasswordIncorrecta) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrPasswordIncorrecta))

			return
		}

		err = fmt.Errorf("v1.HandleResetRaffle -> h.svc.ResetRaffle -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Reset{
		Success:                true,
		Message:                "sistema de rifa reiniciado exitosamente",
		AffectedCodes:          result.AffectedCodigos,
		AffectedParticipations: result.AffectedParticipaciones,
	})
}

func clienteFilterFromQuery(ctx *gin.Context) domain.ClienteFilter {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	sedeID, err := strconv.ParseUint(ctx.Query("sede_id"), 10, 32)
	if err != nil {
		sedeID = 0
	}

	return domain.ClienteFilter{
		Search: strings.TrimSpace(ctx.Query("search")),
		SedeID: uint(sedeID),
		Page:   page,
		Limit:  limit,
	}
}
