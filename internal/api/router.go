package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sokoyetu/storefront/internal/api/handler"
	"github.com/sokoyetu/storefront/internal/api/middleware"
	"github.com/sokoyetu/storefront/internal/core/service"
	"github.com/sokoyetu/storefront/internal/infrastructure/backend"
	"github.com/sokoyetu/storefront/internal/infrastructure/config"
	"github.com/sokoyetu/storefront/internal/infrastructure/sessionstore"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, rdb *redis.Client, gateway *backend.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	sessionRepo := sessionstore.NewRedisRepository(rdb, cfg.SessionTTL)
	profileService := service.NewProfileService(gateway, log)
	sessionService := service.NewSessionService(sessionRepo, gateway, profileService, log)
	catalogService := service.NewCatalogService(gateway, log)
	feedbackService := service.NewFeedbackService(gateway)

	authHandler := handler.NewAuthHandler(sessionService)
	panelHandler := handler.NewPanelHandler(sessionService)
	profileHandler := handler.NewProfileHandler(profileService)
	productHandler := handler.NewProductHandler(catalogService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	sessionMiddleware := middleware.Session(cfg.SessionSecret, cfg.SessionTTL, !cfg.Development(), sessionService)

	// --- Storefront API (session-scoped) ---
	g := e.Group("/api", sessionMiddleware)
	g.POST("/auth/login", authHandler.Login)
	g.POST("/auth/signup", authHandler.Signup)
	g.POST("/auth/logout", authHandler.Logout)
	g.POST("/auth/request-password-reset", authHandler.RequestPasswordReset)
	g.POST("/auth/reset-password", authHandler.ResetPassword)
	g.GET("/session", authHandler.Session)
	g.POST("/session/panels/:panel/toggle", panelHandler.Toggle)
	g.GET("/user/profile", profileHandler.Get)
	g.PATCH("/user/profile", profileHandler.Patch)
	g.GET("/products/featured", productHandler.Featured)
	g.POST("/feedback", feedbackHandler.Submit)

	// --- Health probes and metrics (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, gateway)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
