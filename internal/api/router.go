package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/novafin/finance-system/docs"
	"github.com/novafin/finance-system/internal/api/handler"
	"github.com/novafin/finance-system/internal/api/middleware"
	"github.com/novafin/finance-system/internal/core/ports"
	"github.com/novafin/finance-system/internal/core/service"
	"github.com/novafin/finance-system/internal/infrastructure/config"
)

// Store is what the router needs from a blob store backend: the core contract
// plus a health ping.
type Store interface {
	ports.BlobStore
	handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store Store, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("novafin"))

	// --- Dependencies ---
	users := service.NewUserService(store, cfg.JWTSecret, cfg.TokenTTL, log)
	ledger := service.NewLedgerService(store, log)
	taxonomy := service.NewTaxonomyService(store, log)

	authHandler := handler.NewAuthHandler(users)
	txHandler := handler.NewTransactionHandler(ledger)
	categoryHandler := handler.NewCategoryHandler(taxonomy)
	statsHandler := handler.NewStatsHandler(ledger)
	exportHandler := handler.NewExportHandler(ledger, taxonomy)
	healthHandler := handler.NewHealthHandler(store)

	requireSession := middleware.Auth(cfg.JWTSecret, users)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, requireSession)
	e.GET("/auth/me", authHandler.Me, requireSession)

	// --- Ledger and derived views ---
	v1 := e.Group("/v1", requireSession)
	v1.GET("/transactions", txHandler.List)
	v1.POST("/transactions", txHandler.Record)
	v1.DELETE("/transactions/:id", txHandler.Delete)

	v1.GET("/balance", statsHandler.Balance)
	v1.GET("/statistics", statsHandler.Summary)
	v1.GET("/statistics/categories", statsHandler.CategoryBreakdown)
	v1.GET("/statistics/monthly", statsHandler.MonthlyEvolution)

	v1.GET("/categories", categoryHandler.Get)
	v1.PUT("/categories", categoryHandler.Replace)
	v1.POST("/categories/:kind", categoryHandler.Add)

	v1.GET("/export", exportHandler.Export)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
