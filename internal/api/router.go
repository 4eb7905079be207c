package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/artistpay/payout-portal/docs"
	"github.com/artistpay/payout-portal/internal/api/handler"
	"github.com/artistpay/payout-portal/internal/api/middleware"
	"github.com/artistpay/payout-portal/internal/core/domain"
	"github.com/artistpay/payout-portal/internal/core/service"
	"github.com/artistpay/payout-portal/internal/infrastructure/db/postgres"
	redisinfra "github.com/artistpay/payout-portal/internal/infrastructure/db/redis"
	"github.com/artistpay/payout-portal/internal/pkg/config"
	"github.com/artistpay/payout-portal/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The dispatcher must already be started; the router only enqueues into it.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, dispatcher service.NotificationDispatcher) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("payout"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	withdrawalRepo := postgres.NewWithdrawalRepository(pool)
	accountRepo := postgres.NewBankAccountRepository(pool)

	sessions := service.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, redisinfra.NewSessionRevocations(rdb), log)
	authService := service.NewAuthService(userRepo, sessions, log)
	userService := service.NewUserService(userRepo, dispatcher, log)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo, userRepo, dispatcher, log)
	accountService := service.NewBankAccountService(accountRepo, log)
	alertStore := service.NewAlertConfigStore(service.AlertConfig{
		AmountThreshold:  cfg.Alerts.AmountThreshold,
		WithdrawalCount:  cfg.Alerts.WithdrawalCount,
		ReviewWindowDays: cfg.Alerts.ReviewWindowDays,
	})

	secureCookie := cfg.Env == "production"
	authHandler := handler.NewAuthHandler(authService, sessions, userRepo, cfg.SessionTTL, secureCookie)
	userHandler := handler.NewUserHandler(userService)
	withdrawalHandler := handler.NewWithdrawalHandler(withdrawalService)
	accountHandler := handler.NewAccountHandler(accountService)
	alertHandler := handler.NewAlertHandler(alertStore)

	sessionRequired := middleware.Session(sessions, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	artistOnly := middleware.RBAC(domain.RoleArtist)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleArtist)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)
	e.POST("/auth/change-password", authHandler.ChangePassword, sessionRequired)

	// --- Artist management (admin only) ---
	users := e.Group("/users", sessionRequired, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.PUT("/:id/estado", userHandler.SetStatus)
	users.GET("/:id/notas", userHandler.ListNotes)
	users.POST("/:id/notas", userHandler.AddNote)

	// --- Alert thresholds (admin only, in-memory) ---
	alerts := e.Group("/admin/alertas", sessionRequired, adminOnly)
	alerts.GET("/configuracion", alertHandler.Get)
	alerts.PATCH("/configuracion", alertHandler.Patch)

	// --- Withdrawals ---
	withdrawals := e.Group("/withdrawals", sessionRequired)
	withdrawals.POST("", withdrawalHandler.Request, artistOnly)
	withdrawals.GET("", withdrawalHandler.List, anyRole)
	withdrawals.GET("/:id", withdrawalHandler.Get, anyRole)
	withdrawals.PUT("/:id/aprobar", withdrawalHandler.Approve, adminOnly)
	withdrawals.PUT("/:id/rechazar", withdrawalHandler.Reject, adminOnly)

	// --- Bank accounts (artist-owned) ---
	accounts := e.Group("/accounts", sessionRequired, artistOnly)
	accounts.GET("", accountHandler.List)
	accounts.POST("", accountHandler.Create)
	accounts.PATCH("/:id", accountHandler.Update)
	accounts.PUT("/:id/predeterminada", accountHandler.SetDefault)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
