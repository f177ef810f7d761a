package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/epicorifa/rifa-api/internal/api/handler/v1/response"
	"github.com/epicorifa/rifa-api/internal/ratelimit"
)

var errDemasiadosIntentos = errors.New("demasiados intentos, intenta de nuevo en unos minutos")

// RateLimit consumes one point per request, keyed by client IP. A limiter
// backend failure fails open: blocking all traffic because Redis is down is
// worse than briefly losing the budget.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		err := limiter.Consume(ctx.Request.Context(), ctx.ClientIP())
		if err != nil {
			if errors.Is(err, ratelimit.ErrRateLimited) {
				response.RenderErr(ctx, response.ErrTooManyRequests(errDemasiadosIntentos))
				return
			}

			zap.L().Error("rate limiter backend failure",
				zap.String("client_ip", ctx.ClientIP()),
				zap.String("route", ctx.FullPath()),
				zap.Error(err),
			)
		}

		ctx.Next()
	}
}
