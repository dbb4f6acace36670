package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go -package=mocks

import (
	"context"

	"tech-share/domain"
)

// AuthUsecase defines the session-based authentication flow
type AuthUsecase interface {
	// Login verifies credentials and establishes a session. Any mismatch
	// surfaces uniformly as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.Session, *domain.User, error)
	// Logout invalidates the session for the given token. Logging out an
	// unknown token is not an error.
	Logout(ctx context.Context, token string) error
	// ValidateSession resolves a session token into the authenticated user
	// context, refreshing its activity timestamp.
	ValidateSession(ctx context.Context, token string) (*domain.UserContext, error)
}

// UserRepository defines user account data access
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SessionRepository defines session data access
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	UpdateActivity(ctx context.Context, sessionID string) error
	// DeleteByToken removes a session; deleting an absent token is a no-op.
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
