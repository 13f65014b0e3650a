package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"presskit/internal/domain/entity"
	"presskit/internal/domain/service"
	mockSvc "presskit/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/content", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func adminClaims(tokenID string) *service.Claims {
	return &service.Claims{
		Email: "dj@example.com",
		Role:  entity.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
		},
	}
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	mockBlacklist := mockSvc.NewMockTokenBlacklist(t)
	authMw := NewAuthMiddleware(mockTokenSvc, mockBlacklist)

	claims := adminClaims("token-1")
	mockTokenSvc.EXPECT().ValidateToken("valid-token").Return(claims, nil)
	mockBlacklist.EXPECT().IsRevoked("token-1").Return(false)

	c, rec := newAuthTestContext("Bearer valid-token")

	var reached bool
	next := func(c echo.Context) error {
		reached = true

		stored, ok := ClaimsFromContext(c)
		require.True(t, ok)
		assert.Equal(t, claims, stored)

		return c.NoContent(http.StatusOK)
	}

	err := authMw.Authenticate(next)(c)
	require.NoError(t, err)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	authMw := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockSvc.NewMockTokenBlacklist(t))

	c, rec := newAuthTestContext("")

	err := authMw.Authenticate(failIfReached(t))(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	authMw := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockSvc.NewMockTokenBlacklist(t))

	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := authMw.Authenticate(failIfReached(t))(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	authMw := NewAuthMiddleware(mockTokenSvc, mockSvc.NewMockTokenBlacklist(t))

	mockTokenSvc.EXPECT().ValidateToken("garbage").Return(nil, errors.New("bad signature"))

	c, rec := newAuthTestContext("Bearer garbage")

	err := authMw.Authenticate(failIfReached(t))(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_WrongRole(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	authMw := NewAuthMiddleware(mockTokenSvc, mockSvc.NewMockTokenBlacklist(t))

	claims := adminClaims("token-1")
	claims.Role = entity.Role("editor")
	mockTokenSvc.EXPECT().ValidateToken("valid-token").Return(claims, nil)

	c, rec := newAuthTestContext("Bearer valid-token")

	err := authMw.Authenticate(failIfReached(t))(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RevokedToken(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	mockBlacklist := mockSvc.NewMockTokenBlacklist(t)
	authMw := NewAuthMiddleware(mockTokenSvc, mockBlacklist)

	claims := adminClaims("revoked-token")
	mockTokenSvc.EXPECT().ValidateToken("valid-token").Return(claims, nil)
	mockBlacklist.EXPECT().IsRevoked("revoked-token").Return(true)

	c, rec := newAuthTestContext("Bearer valid-token")

	err := authMw.Authenticate(failIfReached(t))(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
}

func failIfReached(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatal("next handler should not run")

		return nil
	}
}
