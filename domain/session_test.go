package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-share/domain"
)

func TestNewSession(t *testing.T) {
	tests := []struct {
		name     string
		userID   int64
		duration time.Duration
		wantErr  bool
	}{
		{name: "valid session", userID: 1, duration: 24 * time.Hour, wantErr: false},
		{name: "zero user ID", userID: 0, duration: 24 * time.Hour, wantErr: true},
		{name: "negative duration", userID: 1, duration: -time.Hour, wantErr: true},
		{name: "zero duration", userID: 1, duration: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := domain.NewSession(tt.userID, tt.duration)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, session)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.userID, session.UserID)
			assert.NotEmpty(t, session.Token)
			assert.True(t, session.IsValid())
			assert.False(t, session.IsExpired())
		})
	}
}

func TestNewSession_TokensAreUnique(t *testing.T) {
	first, err := domain.NewSession(1, time.Hour)
	require.NoError(t, err)
	second, err := domain.NewSession(1, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestSession_IsExpired(t *testing.T) {
	session, err := domain.NewSession(1, time.Hour)
	require.NoError(t, err)

	session.ExpiresAt = time.Now().Add(-time.Minute)

	assert.True(t, session.IsExpired())
	assert.False(t, session.IsValid())
}

func TestSession_UpdateActivity(t *testing.T) {
	session, err := domain.NewSession(1, time.Hour)
	require.NoError(t, err)

	before := session.LastActivityAt
	time.Sleep(time.Millisecond)
	session.UpdateActivity()

	assert.True(t, session.LastActivityAt.After(before))
}
