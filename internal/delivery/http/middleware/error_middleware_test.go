package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "presskit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_AppErrorEnvelope(t *testing.T) {
	rec := handleError(t, domainerrors.ErrTokenRevoked)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
	assert.Contains(t, rec.Body.String(), domainerrors.ErrTokenRevoked.Message())
}

func TestErrorMiddleware_UnknownRouteUsesNotFound(t *testing.T) {
	rec := handleError(t, echo.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Contains(t, rec.Body.String(), domainerrors.ErrNotFound.Message())
}

func TestErrorMiddleware_UnexpectedErrorStaysOpaque(t *testing.T) {
	rec := handleError(t, errors.New("pq: connection reset by peer"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
