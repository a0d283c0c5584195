package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/gototop/admin-api/docs"
	"github.com/gototop/admin-api/internal/api/handler"
	"github.com/gototop/admin-api/internal/api/middleware"
	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
	"github.com/gototop/admin-api/internal/core/service"
	"github.com/gototop/admin-api/internal/infrastructure/config"
	mongorepo "github.com/gototop/admin-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/gototop/admin-api/internal/infrastructure/db/redis"
	"github.com/gototop/admin-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity recorder is passed in because its worker pool is started and
// stopped by the caller.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, recorder ports.ActivityRecorder) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("gototop"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	leadRepo := mongorepo.NewLeadRepository(db)
	activityRepo := mongorepo.NewActivityRepository(db)
	contentRepo := mongorepo.NewContentRepository(db)
	settingRepo := mongorepo.NewSettingRepository(db)
	calcRepo := mongorepo.NewCalculatorRepository(db)

	// --- Services ---
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	throttle := redisinfra.NewLoginThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)

	authService := service.NewAuthService(userRepo, hasher, tokens, throttle, recorder, log)
	userService := service.NewUserService(userRepo, hasher, recorder, log)
	leadService := service.NewLeadService(leadRepo, userRepo, recorder, log)
	dashboardService := service.NewDashboardService(leadRepo, userRepo, activityRepo)
	contentService := service.NewContentService(contentRepo, recorder)
	settingsService := service.NewSettingsService(settingRepo, recorder)
	calcService := service.NewCalculatorService(calcRepo, recorder)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	leadHandler := handler.NewLeadHandler(leadService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	contentHandler := handler.NewContentHandler(contentService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	calcHandler := handler.NewCalculatorHandler(calcService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	requireAuth := middleware.Auth(authService)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	api := e.Group("/api")

	// --- Public routes: landing form intake and public site data ---
	api.POST("/auth/login", authHandler.Login)
	api.POST("/lead", leadHandler.Submit)
	api.GET("/content", contentHandler.List)
	api.GET("/content/:key", contentHandler.Get)
	api.GET("/calc-tabs", calcHandler.ListTabs)
	api.GET("/calc-services", calcHandler.ListServices)
	api.GET("/footer", settingsHandler.GetFooter)
	api.GET("/health", healthHandler.Liveness)
	api.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Authenticated, no section gate ---
	authed := api.Group("", requireAuth)
	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/auth/change-password", authHandler.ChangePassword)
	authed.GET("/config/roles", userHandler.Roles)

	// --- Section-gated groups ---
	dashboard := api.Group("/dashboard", requireAuth, middleware.RequireSection(domain.SectionDashboard))
	dashboard.GET("/stats", dashboardHandler.Stats)
	api.GET("/activity", dashboardHandler.Activity, requireAuth, middleware.RequireSection(domain.SectionDashboard))

	leads := api.Group("/leads", requireAuth, middleware.RequireSection(domain.SectionLeads))
	leads.GET("", leadHandler.List)
	leads.POST("", leadHandler.Create)
	leads.PUT("/:id", leadHandler.Update)
	leads.DELETE("/:id", leadHandler.Delete)

	users := api.Group("/users", requireAuth, middleware.RequireSection(domain.SectionEmployees))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	users.POST("/:id/reset-password", userHandler.ResetPassword)

	permissions := api.Group("/permissions", requireAuth, middleware.RequireSection(domain.SectionPermissions))
	permissions.GET("/:id", userHandler.GetPermissions)
	permissions.PUT("/:id", userHandler.UpdatePermissions)

	content := api.Group("/content", requireAuth, middleware.RequireSection(domain.SectionContent))
	content.POST("", contentHandler.Upsert)
	content.PUT("/:key", contentHandler.Put)
	content.DELETE("/:key", contentHandler.Delete)

	calculator := api.Group("", requireAuth, middleware.RequireSection(domain.SectionCalculator))
	calculator.POST("/calc-tabs", calcHandler.CreateTab)
	calculator.PUT("/calc-tabs/:id", calcHandler.UpdateTab)
	calculator.DELETE("/calc-tabs/:id", calcHandler.DeleteTab)
	calculator.POST("/calc-services", calcHandler.CreateService)
	calculator.PUT("/calc-services/:id", calcHandler.UpdateService)
	calculator.DELETE("/calc-services/:id", calcHandler.DeleteService)

	settings := api.Group("", requireAuth, middleware.RequireSection(domain.SectionSettings))
	settings.PUT("/footer", settingsHandler.PutFooter)
	settings.GET("/pdf-template", settingsHandler.GetPDFTemplate)
	settings.PUT("/pdf-template", settingsHandler.PutPDFTemplate)
	settings.GET("/telegram-bot", settingsHandler.GetTelegramBot)
	settings.PUT("/telegram-bot", settingsHandler.PutTelegramBot)

	return e
}
