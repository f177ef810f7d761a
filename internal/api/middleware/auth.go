package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/epicorifa/rifa-api/internal/api/handler/v1/response"
	"github.com/epicorifa/rifa-api/internal/pkg/jwthelper"
)

// ClaimsKey is where VerifyJWT stores the parsed claims in the gin context.
const ClaimsKey = "claims"

// AdminCookieName is the HTTP-only cookie set on admin login, read here as a
// fallback when no Authorization header is present.
const AdminCookieName = "admin_token"

var (
	errNoToken      = errors.New("autenticación requerida")
	errInvalidToken = errors.New("token inválido o expirado")
	errNotAdmin     = errors.New("acceso restringido a administradores")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT accepts a Bearer token or, failing that, the admin cookie. The
// browser console relies on the cookie; API clients send the header.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerToken(ctx)
		if tokenString == "" {
			if cookie, err := ctx.Cookie(AdminCookieName); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errNoToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errInvalidToken))
			return
		}

		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}

// RequireAdmin must run after VerifyJWT. A valid cliente token on an admin
// route is a 403, not a 401.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := GetClaims(ctx)
		if claims == nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errNoToken))
			return
		}

		if claims.Type != jwthelper.TypeAdmin {
			response.RenderErr(ctx, response.ErrForbidden(errNotAdmin))
			return
		}

		ctx.Next()
	}
}

// GetClaims retrieves what VerifyJWT stored; nil when the route is not
// guarded or verification never ran.
func GetClaims(ctx *gin.Context) *jwthelper.Claims {
	value, exists := ctx.Get(ClaimsKey)
	if !exists {
		return nil
	}

	claims, ok := value.(*jwthelper.Claims)
	if !ok {
		return nil
	}

	return claims
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
