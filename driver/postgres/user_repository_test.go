package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tech-share/domain"
	"tech-share/utils/logger"
)

func createTestUserRepository(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewUserRepository(mockDB, testLogger).(*UserRepository)
	return repo, mockDB
}

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "roles"})
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(userRows().
			AddRow(int64(1), "Alice", "alice@example.com", "$2a$10$hash", []string{"admin", "user"}))

	user, err := repo.FindByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, []domain.UserRole{domain.UserRoleAdmin, domain.UserRoleUser}, user.Roles)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("bob@example.com").
		WillReturnRows(userRows().
			AddRow(int64(2), "Bob", "bob@example.com", "$2a$10$hash", []string{"user"}))

	user, err := repo.FindByEmail(context.Background(), "bob@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, []domain.UserRole{domain.UserRoleUser}, user.Roles)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
