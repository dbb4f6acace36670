package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"tech-share/config"
	"tech-share/driver/postgres"
	"tech-share/gateway"
	"tech-share/port"
	"tech-share/rest"
	"tech-share/usecase"
	"tech-share/utils/security"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB *postgres.DB

	// Repositories
	ArticleRepository port.ArticleRepository
	UserRepository    port.UserRepository
	SessionRepository port.SessionRepository

	// Usecases
	AuthUsecase     port.AuthUsecase
	CreateArticle   port.CreateArticleUsecase
	UpdateArticle   port.UpdateArticleUsecase
	DeleteArticle   port.DeleteArticleUsecase
	FindArticle     port.FindArticleBySlugUsecase
	FetchArticles   port.FetchArticlesUsecase
	FetchMyArticles port.FetchMyArticlesUsecase

	// Security
	LoginThrottle *security.LoginThrottle
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	db, err := postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	container.DB = db

	container.ArticleRepository = postgres.NewArticleRepository(db.Pool(), logger)
	container.UserRepository = postgres.NewUserRepository(db.Pool(), logger)
	container.SessionRepository = postgres.NewSessionRepository(db.Pool(), logger)

	txManager := postgres.NewTransactionManager(db.Pool(), logger)
	slugResolver := usecase.NewSlugResolver(container.ArticleRepository)
	permissions := gateway.NewPermissionGateway(container.UserRepository, logger)

	container.AuthUsecase = usecase.NewAuthUsecase(container.UserRepository, container.SessionRepository, cfg.SessionTTL, logger)
	container.CreateArticle = usecase.NewCreateArticleUsecase(container.ArticleRepository, slugResolver, txManager)
	container.UpdateArticle = usecase.NewUpdateArticleUsecase(container.ArticleRepository, permissions, txManager)
	container.DeleteArticle = usecase.NewDeleteArticleUsecase(container.ArticleRepository, permissions, txManager)
	container.FindArticle = usecase.NewFindArticleBySlugUsecase(container.ArticleRepository, permissions, logger)
	container.FetchArticles = usecase.NewFetchArticlesUsecase(container.ArticleRepository)
	container.FetchMyArticles = usecase.NewFetchMyArticlesUsecase(container.ArticleRepository)

	container.LoginThrottle = security.NewLoginThrottle(logger)

	logger.Info("container initialized")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:             c.Logger,
		AuthUsecase:        c.AuthUsecase,
		CreateArticle:      c.CreateArticle,
		UpdateArticle:      c.UpdateArticle,
		DeleteArticle:      c.DeleteArticle,
		FindArticle:        c.FindArticle,
		FetchArticles:      c.FetchArticles,
		FetchMyArticles:    c.FetchMyArticles,
		Database:           c.DB,
		LoginThrottle:      c.LoginThrottle,
		SessionCookieName:  c.Config.SessionCookieName,
		RateLimitPerSecond: c.Config.RateLimitPerSecond,
		RateLimitBurst:     c.Config.RateLimitBurst,
		EnableDebug:        c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// Close releases the container's resources
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
}

// CleanupExpiredSessions removes sessions past their expiry. Intended to run
// periodically from the server entrypoint.
func (c *Container) CleanupExpiredSessions(ctx context.Context) error {
	_, err := c.SessionRepository.DeleteExpired(ctx)
	return err
}
