package handler

import (
	"log/slog"
	"net/http"

	"presskit/internal/delivery/http/middleware"
	"presskit/internal/delivery/http/response"
	domainerrors "presskit/internal/domain/errors"
	"presskit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for session-related handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the admin login request.
func (h *AdminHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Cuerpo de la solicitud inválido")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Sesión iniciada")
}

// Logout revokes the presented session token.
func (h *AdminHandler) Logout(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	if err := h.uc.Logout(c.Request().Context(), claims); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sesión cerrada")
}
