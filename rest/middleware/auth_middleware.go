package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tech-share/domain"
	"tech-share/port"
)

// AuthMiddleware resolves session tokens into an authenticated user context
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	cookieName  string
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, cookieName string, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		cookieName:  cookieName,
		logger:      logger,
	}
}

// RequireAuth rejects requests without a valid session
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := m.extractSessionToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			user, err := m.authUsecase.ValidateSession(ctx, token)
			if err != nil {
				m.logger.Debug("session validation failed", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.SetRequest(c.Request().WithContext(domain.SetUserContext(ctx, user)))
			return next(c)
		}
	}
}

// OptionalAuth attaches the user context when a valid session is present and
// falls through anonymously otherwise
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := m.extractSessionToken(c)
			if token == "" {
				return next(c)
			}

			user, err := m.authUsecase.ValidateSession(ctx, token)
			if err != nil {
				m.logger.Debug("optional auth failed", "error", err)
				return next(c)
			}

			c.SetRequest(c.Request().WithContext(domain.SetUserContext(ctx, user)))
			return next(c)
		}
	}
}

// extractSessionToken pulls the session token from the cookie, the
// Authorization header, or the X-Session-Token header, in that order
func (m *AuthMiddleware) extractSessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	auth := c.Request().Header.Get("Authorization")
	if auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return c.Request().Header.Get("X-Session-Token")
}
