package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the uniform failure envelope: {"success": false, "message": ...}.
// StatusCode never reaches the body.
type Err struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
}

func (e *Err) Error() string {
	return e.Message
}

// RenderErr writes the envelope. 5xx errors get a generic message; the
// original error goes to the server log only.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("internal server error",
			zap.String("request_id", ctx.GetHeader("X-Request-ID")),
			zap.String("client_ip", ctx.ClientIP()),
			zap.String("route", ctx.FullPath()),
			zap.String("error", err.Message),
		)
		err.Message = "Error interno del servidor"
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func newErr(statusCode int, err error) *Err {
	return &Err{
		StatusCode: statusCode,
		Success:    false,
		Message:    err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err)
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err)
}

func ErrForbidden(err error) *Err {
	return newErr(http.StatusForbidden, err)
}

func ErrNotFound(err error) *Err {
	return newErr(http.StatusNotFound, err)
}

func ErrTooManyRequests(err error) *Err {
	return newErr(http.StatusTooManyRequests, err)
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, err)
}
