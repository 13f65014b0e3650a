// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"time"

	"presskit/config"
	"presskit/internal/delivery/http/middleware"
	"presskit/internal/delivery/http/router/handler"
	domainerrors "presskit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	ContentHandler *handler.ContentHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	contentHandler *handler.ContentHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		contentHandler: params.ContentHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Public read path consumed by the site frontend.
	api.GET("/content", r.contentHandler.GetContent)

	adminGroup := api.Group("/admin")
	adminGroup.POST("/login", r.adminHandler.Login, r.loginRateLimiter())

	// Everything below requires a valid admin session.
	authed := adminGroup.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.POST("/logout", r.adminHandler.Logout)
		authed.GET("/content", r.contentHandler.GetContent)
		authed.PUT("/content", r.contentHandler.UpdateContent)
	}
}

// loginRateLimiter throttles credential guessing per client IP.
func (r *router) loginRateLimiter() echo.MiddlewareFunc {
	perMinute := r.cfg.LoginPerMinuteOrDefault()

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(perMinute) / 60.0),
			Burst:     perMinute,
			ExpiresIn: 3 * time.Minute,
		}),
		ErrorHandler: func(c echo.Context, _ error) error {
			return domainerrors.ErrTooManyRequests
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return domainerrors.ErrTooManyRequests
		},
	})
}
