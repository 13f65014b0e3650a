package middleware

import (
	"strings"

	"presskit/internal/delivery/http/response"
	"presskit/internal/domain/entity"
	domainerrors "presskit/internal/domain/errors"
	"presskit/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ClaimsContextKey is the echo context key holding the verified session claims.
const ClaimsContextKey = "adminClaims"

// AuthMiddleware guards admin routes with bearer token authentication.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	blacklist service.TokenBlacklist
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, blacklist service.TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, blacklist: blacklist}
}

// Authenticate validates the bearer token, rejects revoked sessions and
// non-admin roles, and stores the claims on the context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c,
				domainerrors.ErrUnauthorized.ErrorCode(),
				domainerrors.ErrUnauthorized.Message())
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c,
				domainerrors.ErrTokenInvalid.ErrorCode(),
				domainerrors.ErrTokenInvalid.Message())
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c,
				domainerrors.ErrTokenInvalid.ErrorCode(),
				domainerrors.ErrTokenInvalid.Message())
		}

		if claims.Role != entity.RoleAdmin {
			return response.Unauthorized(c,
				domainerrors.ErrUnauthorized.ErrorCode(),
				domainerrors.ErrUnauthorized.Message())
		}

		if m.blacklist.IsRevoked(claims.TokenID()) {
			return response.Unauthorized(c,
				domainerrors.ErrTokenRevoked.ErrorCode(),
				domainerrors.ErrTokenRevoked.Message())
		}

		c.Set(ClaimsContextKey, claims)

		return next(c)
	}
}

// ClaimsFromContext retrieves the session claims stored by Authenticate.
func ClaimsFromContext(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ClaimsContextKey).(*service.Claims)

	return claims, ok
}
