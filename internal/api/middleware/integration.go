package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/epicorifa/rifa-api/internal/api/handler/v1/response"
	"github.com/epicorifa/rifa-api/internal/domain"
	"github.com/epicorifa/rifa-api/internal/ratelimit"
	"github.com/epicorifa/rifa-api/internal/service"
)

// TraceIDKey holds the per-call trace id that every partner response and
// audit row must carry.
const TraceIDKey = "trace_id"

const apiKeyHeader = "X-API-Key"

type APIKeyVerifier interface {
	VerifyAPIKey(ctx context.Context, apiKey, integrationName string) error
}

type CallAuditor interface {
	LogCall(ctx context.Context, entry domain.IntegrationLog)
}

// IntegrationGate fronts all partner routes: it assigns a trace id, applies
// the partner rate budget, and verifies the API key — auditing rejected
// calls too, so a partner with a bad key still leaves a trail.
type IntegrationGate struct {
	verifier        APIKeyVerifier
	auditor         CallAuditor
	limiter         ratelimit.Limiter
	integrationName string
}

func NewIntegrationGate(verifier APIKeyVerifier, auditor CallAuditor, limiter ratelimit.Limiter, integrationName string) *IntegrationGate {
	return &IntegrationGate{
		verifier:        verifier,
		auditor:         auditor,
		limiter:         limiter,
		integrationName: integrationName,
	}
}

func (g *IntegrationGate) Guard() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		traceID := uuid.NewString()
		ctx.Set(TraceIDKey, traceID)

		if err := g.limiter.Consume(ctx.Request.Context(), ctx.ClientIP()); err != nil {
			if errors.Is(err, ratelimit.ErrRateLimited) {
				g.reject(ctx, traceID, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			// Backend failure fails open, same policy as the public routes.
		}

		apiKey := ctx.GetHeader(apiKeyHeader)
		if apiKey == "" {
			g.reject(ctx, traceID, http.StatusUnauthorized, "missing API key")
			return
		}

		if err := g.verifier.VerifyAPIKey(ctx.Request.Context(), apiKey, g.integrationName); err != nil {
			if errors.Is(err, service.ErrInvalidAPIKey) {
				g.reject(ctx, traceID, http.StatusUnauthorized, "invalid API key")
				return
			}

			g.reject(ctx, traceID, http.StatusInternalServerError, "internal error")
			return
		}

		ctx.Next()
	}
}

func (g *IntegrationGate) reject(ctx *gin.Context, traceID string, statusCode int, message string) {
	g.auditor.LogCall(ctx.Request.Context(), domain.IntegrationLog{
		TraceID:         traceID,
		Endpoint:        ctx.FullPath(),
		Method:          ctx.Request.Method,
		IntegrationName: g.integrationName,
		StatusCode:      statusCode,
		ErrorMessage:    message,
	})

	ctx.AbortWithStatusJSON(statusCode, response.IntegrationErr{
		Success: false,
		Error:   message,
		TraceID: traceID,
	})
}

// GetTraceID returns the trace id the gate assigned, or an empty string on
// unguarded routes.
func GetTraceID(ctx *gin.Context) string {
	return ctx.GetString(TraceIDKey)
}
