package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
)

var userRows = []string{
	"id", "username", "email", "password_hash", "avatar", "role",
	"confirmed", "banned", "refresh_token", "reset_token", "created_at", "updated_at",
}

func addUserRow(rows *pgxmock.Rows, user *entities.User) *pgxmock.Rows {
	return rows.AddRow(
		user.ID, user.Username, user.Email, user.PasswordHash, user.Avatar, user.Role,
		user.Confirmed, user.Banned, user.RefreshToken, user.ResetToken, user.CreatedAt, user.UpdatedAt,
	)
}

func storedUser() *entities.User {
	now := time.Now()
	return &entities.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "bcrypt-hash",
		Role:         entities.RoleUser,
		Confirmed:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	return mockPool
}

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)

	user := storedUser()
	mockPool.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash, user.Avatar, user.Role).
		WillReturnRows(addUserRow(pgxmock.NewRows(userRows), user))

	created, err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, created.ID)
	assert.Equal(t, user.Email, created.Email)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)

	user := storedUser()
	mockPool.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash, user.Avatar, user.Role).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

	_, err := repo.Create(ctx, user)
	require.ErrorIs(t, err, entities.ErrAccountExists)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)

	user := storedUser()
	mockPool.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs(user.Email).
		WillReturnRows(addUserRow(pgxmock.NewRows(userRows), user))

	found, err := repo.FindByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, user.PasswordHash, found.PasswordHash)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmailNotFound(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)

	mockPool.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepositoryUpdateRefreshToken(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)

	mockPool.ExpectExec("UPDATE users").
		WithArgs("alice@example.com", "new-refresh-token").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateRefreshToken(ctx, "alice@example.com", "new-refresh-token"))
	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepositoryUpdateUnknownEmail(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)

	mockPool.ExpectExec("UPDATE users").
		WithArgs("ghost@example.com", "token").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateRefreshToken(ctx, "ghost@example.com", "token")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepositorySearch(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)

	first := storedUser()
	second := storedUser()
	second.ID = 2
	second.Username = "alicia"
	second.Email = "alicia@example.com"

	rows := pgxmock.NewRows(userRows)
	addUserRow(rows, first)
	addUserRow(rows, second)

	mockPool.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ali").
		WillReturnRows(rows)

	users, err := repo.Search(ctx, "ali")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "alicia", users[1].Username)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepositoryDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)

	mockPool.ExpectExec("DELETE FROM users").
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(ctx, 42)
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	require.NoError(t, mockPool.ExpectationsWereMet())
}
