package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epicorifa/rifa-api/internal/api/handler/v1/request"
	"github.com/epicorifa/rifa-api/internal/api/handler/v1/response"
	"github.com/epicorifa/rifa-api/internal/config"
	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/pkg/jwthelper"
	"github.com/epicorifa/rifa-api/internal/service"
)

// errCodigoRechazado deliberately collapses not-found, used and expired on
// the register/login path; the specific reason is only disclosed by the
// read-only validate endpoint.
var errCodigoRechazado = errors.New("código inválido, ya usado o expirado")

type AuthService interface {
	ValidateCode(ctx context.Context, codigo string) error
	Register(ctx context.Context, cliente domain.Cliente, password, codigo string) (domain.Cliente, domain.Participacion, error)
	Login(ctx context.Context, correo, password, codigo string) (domain.Cliente, domain.Participacion, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleValidateCode godoc
// @Summary      Check whether a promo code can still be redeemed
// @Tags         auth
// @Produce      json
// @Param        request   body      request.ValidateCodeRequest true "request body"
// @Success      200      {object}   response.ValidacionCodigo
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/validate-code [post]
func (h *AuthHandler) HandleValidateCode(ctx *gin.Context) {
	req := request.ValidateCodeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusOK, response.ValidacionCodigo{Valid: false, Message: err.Error()})

		return
	}

	if err := h.svc.ValidateCode(ctx.Request.Context(), req.Codigo); err != nil {
		// Answer with the sentinel's own text; the error may arrive wrapped
		// and the wrapping never reaches the client.
		for _, sentinel := range []error{
			service.ErrRifaNoActiva,
			service.ErrCodigoNoEncontrado,
			service.ErrCodigoUsado,
			service.ErrCodigoExpirado,
		} {
			if errors.Is(err, sentinel) {
				ctx.JSON(http.StatusOK, response.ValidacionCodigo{Valid: false, Message: sentinel.Error()})

				return
			}
		}

		err = fmt.Errorf("v1.HandleValidateCode -> h.svc.ValidateCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.ValidacionCodigo{Valid: true, Message: "código válido"})
}

// HandleRegister godoc
// @Summary      Register a new client and redeem a code for a raffle number
// @Tags         auth
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      200      {object}   response.Redencion
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	req := request.RegisterRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	cliente, participacion, err := h.svc.Register(ctx.Request.Context(), domain.Cliente{
		Nombre:    req.Nombre,
		Apellidos: req.Apellidos,
		Telefono:  req.Telefono,
		Correo:    req.Correo,
		SedeID:    req.SedeID,
	}, req.Contrasena, req.Codigo)
	if err != nil {
		h.renderRedemptionErr(ctx, "v1.HandleRegister", err)

		return
	}

	h.renderRedemption(ctx, cliente, participacion)
}

// HandleLogin godoc
// @Summary      Log an existing client in and redeem an additional code
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.Redencion
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	cliente, participacion, err := h.svc.Login(ctx.Request.Context(), req.Correo, req.Contrasena, req.Codigo)
	if err != nil {
		h.renderRedemptionErr(ctx, "v1.HandleLogin", err)

		return
	}

	h.renderRedemption(ctx, cliente, participacion)
}

// renderRedemptionErr renders the matched sentinel, never the incoming error:
// the service wraps everything with its call chain and that text is internal.
func (h *AuthHandler) renderRedemptionErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrCodigoNoEncontrado),
		errors.Is(err, service.ErrCodigoUsado),
		errors.Is(err, service.ErrCodigoExpirado):
		response.RenderErr(ctx, response.ErrBadRequest(errCodigoRechazado))

	case errors.Is(err, service.ErrRifaNoActiva):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrRifaNoActiva))

	case errors.Is(err, service.ErrCorreoRegistrado):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrCorreoRegistrado))

	case errors.Is(err, service.ErrSedeInvalida):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrSedeInvalida))

	case errors.Is(err, service.ErrCredencialesInvalidas):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrCredencialesInvalidas))

	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

func (h *AuthHandler) renderRedemption(ctx *gin.Context, cliente domain.Cliente, participacion domain.Participacion) {
	token, err := jwthelper.GenerateClienteToken([]byte(h.conf.JWTSigningKey), cliente.ID, cliente.Correo)
	if err != nil {
		err = fmt.Errorf("v1.renderRedemption -> jwthelper.GenerateClienteToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.Redencion{
		Success: true,
		Cliente: response.ClientePublico{
			ID:     cliente.ID,
			Nombre: cliente.Nombre,
			Correo: cliente.Correo,
		},
		NumeroRifa: participacion.NumeroRifa,
		Token:      token,
	})
}
