package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tech-share/domain"
	"tech-share/port"
	"tech-share/utils/security"
	"tech-share/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	throttle    *security.LoginThrottle
	validator   *validator.Validator
	cookieName  string
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, throttle *security.LoginThrottle, cookieName string, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		throttle:    throttle,
		validator:   validator.New(),
		cookieName:  cookieName,
		logger:      logger,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the authenticated user and session expiry
type LoginResponse struct {
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	ip := c.RealIP()

	if !h.throttle.Allow(ip) {
		return c.JSON(http.StatusTooManyRequests, ErrorResponse{
			Error: "too many failed login attempts, try again later",
		})
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return respondError(c, h.logger, err)
	}

	session, user, err := h.authUsecase.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.throttle.RecordFailure(ip)
		return respondError(c, h.logger, err)
	}
	h.throttle.RecordSuccess(ip)

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, string(role))
	}

	return c.JSON(http.StatusOK, LoginResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Roles:     roles,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /v1/auth/logout. Logging out without a session, or with
// one that is already gone, still succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	token := h.extractToken(c)
	if err := h.authUsecase.Logout(ctx, token); err != nil {
		return respondError(c, h.logger, err)
	}

	// Expire the cookie client-side as well.
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, SuccessResponse{Message: "logged out"})
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := domain.GetUserFromContext(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, string(role))
	}

	return c.JSON(http.StatusOK, LoginResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Roles:     roles,
		ExpiresAt: user.ExpiresAt,
	})
}

func (h *AuthHandler) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return c.Request().Header.Get("X-Session-Token")
}
