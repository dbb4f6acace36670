package domain

import (
	"context"
	"fmt"
	"time"
)

// UserContext represents the authenticated user attached to a request
type UserContext struct {
	UserID    int64      `json:"user_id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Roles     []UserRole `json:"roles"`
	SessionID string     `json:"session_id"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// IsValid checks if the user context is usable and not expired
func (uc *UserContext) IsValid() bool {
	return uc.UserID > 0 && uc.ExpiresAt.After(time.Now())
}

type contextKey string

const userContextKey contextKey = "user_context"

// GetUserFromContext extracts the authenticated user from the request context
func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found")
	}
	if !user.IsValid() {
		return nil, fmt.Errorf("invalid user context")
	}
	return user, nil
}

// SetUserContext attaches the authenticated user to the request context
func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
