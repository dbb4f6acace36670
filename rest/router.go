package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tech-share/port"
	"tech-share/rest/handlers"
	custommw "tech-share/rest/middleware"
	"tech-share/utils/security"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger             *slog.Logger
	AuthUsecase        port.AuthUsecase
	CreateArticle      port.CreateArticleUsecase
	UpdateArticle      port.UpdateArticleUsecase
	DeleteArticle      port.DeleteArticleUsecase
	FindArticle        port.FindArticleBySlugUsecase
	FetchArticles      port.FetchArticlesUsecase
	FetchMyArticles    port.FetchMyArticlesUsecase
	Database           handlers.DatabaseHealth
	LoginThrottle      *security.LoginThrottle
	SessionCookieName  string
	RateLimitPerSecond float64
	RateLimitBurst     int
	EnableDebug        bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	articleHandler := handlers.NewArticleHandler(
		config.CreateArticle,
		config.UpdateArticle,
		config.DeleteArticle,
		config.FindArticle,
		config.FetchArticles,
		config.FetchMyArticles,
		config.Logger,
	)
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.LoginThrottle, config.SessionCookieName, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Database, config.Logger)

	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.SessionCookieName, config.Logger)
	rateLimiter := custommw.NewRateLimiter(config.RateLimitPerSecond, config.RateLimitBurst)

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, authMiddleware.RequireAuth())

	// Article endpoints
	articles := v1.Group("/articles")
	articles.GET("", articleHandler.List)
	articles.GET("/:slug", articleHandler.GetBySlug, authMiddleware.OptionalAuth())
	articles.POST("", articleHandler.Create, authMiddleware.RequireAuth())
	articles.PUT("/:id", articleHandler.Update, authMiddleware.RequireAuth())
	articles.DELETE("/:id", articleHandler.Delete, authMiddleware.RequireAuth())

	// Current user's own articles, drafts included
	my := v1.Group("/my", authMiddleware.RequireAuth())
	my.GET("/articles", articleHandler.ListMine)

	return e
}
