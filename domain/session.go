package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a server-side login session. The token is the opaque
// value handed to the client as a cookie.
type Session struct {
	ID             uuid.UUID `json:"id"`
	UserID         int64     `json:"user_id"`
	Token          string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// NewSession creates a session for the given user with a fresh random token
func NewSession(userID int64, duration time.Duration) (*Session, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if duration <= 0 {
		return nil, fmt.Errorf("session duration must be positive")
	}

	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		UserID:         userID,
		Token:          uuid.NewString(),
		CreatedAt:      now,
		ExpiresAt:      now.Add(duration),
		LastActivityAt: now,
	}, nil
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsValid returns true if the session is still usable
func (s *Session) IsValid() bool {
	return !s.IsExpired()
}

// UpdateActivity updates the last activity timestamp
func (s *Session) UpdateActivity() {
	s.LastActivityAt = time.Now()
}
