package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"tech-share/domain"
	"tech-share/port"
)

// SessionRepository implements port.SessionRepository for PostgreSQL
type SessionRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db DatabaseIface, logger *slog.Logger) port.SessionRepository {
	return &SessionRepository{
		db:     db,
		logger: logger.With("component", "session_repository"),
	}
}

// Create stores a new session
func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, token, created_at, expires_at, last_activity_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querierFrom(ctx, r.db).Exec(ctx, query,
		session.ID,
		session.UserID,
		session.Token,
		session.CreatedAt,
		session.ExpiresAt,
		session.LastActivityAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	r.logger.Info("session created", "session_id", session.ID, "user_id", session.UserID)
	return nil
}

// FindByToken retrieves a session by its opaque token
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `
		SELECT id, user_id, token, created_at, expires_at, last_activity_at
		FROM sessions
		WHERE token = $1`

	var session domain.Session
	err := querierFrom(ctx, r.db).QueryRow(ctx, query, token).Scan(
		&session.ID,
		&session.UserID,
		&session.Token,
		&session.CreatedAt,
		&session.ExpiresAt,
		&session.LastActivityAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session by token: %w", err)
	}

	return &session, nil
}

// UpdateActivity refreshes the session's last activity timestamp
func (r *SessionRepository) UpdateActivity(ctx context.Context, sessionID string) error {
	query := `UPDATE sessions SET last_activity_at = $2 WHERE id = $1`

	tag, err := querierFrom(ctx, r.db).Exec(ctx, query, sessionID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update session activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

// DeleteByToken removes a session. Deleting an absent token is a no-op so
// logout stays idempotent.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`

	if _, err := querierFrom(ctx, r.db).Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// DeleteExpired removes all sessions past their expiry and reports how many
// were deleted.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < $1`

	tag, err := querierFrom(ctx, r.db).Exec(ctx, query, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	deleted := tag.RowsAffected()
	if deleted > 0 {
		r.logger.Info("expired sessions deleted", "count", deleted)
	}

	return deleted, nil
}
