package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-share/domain"
	"tech-share/utils/logger"
)

func createTestSessionRepository(t *testing.T) (*SessionRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewSessionRepository(mockDB, testLogger).(*SessionRepository)
	return repo, mockDB
}

func createTestSession(t *testing.T) *domain.Session {
	t.Helper()

	session, err := domain.NewSession(1, time.Hour)
	require.NoError(t, err)
	return session
}

func TestSessionRepository_Create(t *testing.T) {
	repo, mockDB := createTestSessionRepository(t)
	defer mockDB.Close()

	session := createTestSession(t)
	mockDB.ExpectExec("INSERT INTO sessions").
		WithArgs(
			session.ID,
			session.UserID,
			session.Token,
			session.CreatedAt,
			session.ExpiresAt,
			session.LastActivityAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), session)

	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSessionRepository_FindByToken(t *testing.T) {
	repo, mockDB := createTestSessionRepository(t)
	defer mockDB.Close()

	session := createTestSession(t)
	mockDB.ExpectQuery("SELECT (.+) FROM sessions WHERE token").
		WithArgs(session.Token).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "token", "created_at", "expires_at", "last_activity_at",
		}).AddRow(
			session.ID, session.UserID, session.Token,
			session.CreatedAt, session.ExpiresAt, session.LastActivityAt,
		))

	got, err := repo.FindByToken(context.Background(), session.Token)

	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.UserID, got.UserID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSessionRepository_FindByToken_NotFound(t *testing.T) {
	repo, mockDB := createTestSessionRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT (.+) FROM sessions WHERE token").
		WithArgs("bogus").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByToken(context.Background(), "bogus")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSessionRepository_UpdateActivity(t *testing.T) {
	repo, mockDB := createTestSessionRepository(t)
	defer mockDB.Close()

	session := createTestSession(t)
	mockDB.ExpectExec("UPDATE sessions SET last_activity_at").
		WithArgs(session.ID.String(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateActivity(context.Background(), session.ID.String())

	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSessionRepository_DeleteByToken_AbsentTokenIsNoop(t *testing.T) {
	repo, mockDB := createTestSessionRepository(t)
	defer mockDB.Close()

	mockDB.ExpectExec("DELETE FROM sessions WHERE token").
		WithArgs("already-gone").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteByToken(context.Background(), "already-gone")

	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	repo, mockDB := createTestSessionRepository(t)
	defer mockDB.Close()

	mockDB.ExpectExec("DELETE FROM sessions WHERE expires_at").
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("DELETE", 7))

	deleted, err := repo.DeleteExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
