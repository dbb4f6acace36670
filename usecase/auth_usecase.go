package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tech-share/domain"
	"tech-share/port"
)

// AuthUsecase implements the session-based authentication flow: credential
// verification against the stored bcrypt hash, session establishment and
// idempotent logout.
type AuthUsecase struct {
	userRepo    port.UserRepository
	sessionRepo port.SessionRepository
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// NewAuthUsecase wires dependencies for authentication.
func NewAuthUsecase(userRepo port.UserRepository, sessionRepo port.SessionRepository, sessionTTL time.Duration, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Login verifies the credentials and establishes a session. Whether the email
// is unknown or the password wrong, the caller sees the same
// domain.ErrInvalidCredentials.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.Session, *domain.User, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("load user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := domain.NewSession(user.ID, uc.sessionTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("store session: %w", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID, "session_id", session.ID)
	return session, user, nil
}

// Logout invalidates the session for the given token. An unknown or already
// invalidated token is not an error.
func (uc *AuthUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := uc.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// ValidateSession resolves a token into the authenticated user context and
// refreshes the session's activity timestamp.
func (uc *AuthUsecase) ValidateSession(ctx context.Context, token string) (*domain.UserContext, error) {
	session, err := uc.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if !session.IsValid() {
		return nil, domain.ErrSessionExpired
	}

	user, err := uc.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}

	if err := uc.sessionRepo.UpdateActivity(ctx, session.ID.String()); err != nil {
		uc.logger.Warn("failed to update session activity", "session_id", session.ID, "error", err)
	}

	return &domain.UserContext{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Roles:     user.Roles,
		SessionID: session.ID.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}
