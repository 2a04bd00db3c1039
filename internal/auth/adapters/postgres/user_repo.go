// Package postgres implements the auth repositories on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/repositories"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

// PgxPoolInterface is the subset of pgxpool.Pool the repositories use, so
// pgxmock can stand in during tests.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

const uniqueViolationCode = "23505"

const userColumns = `id, username, email, password_hash, COALESCE(avatar, ''), role, confirmed, banned,
       COALESCE(refresh_token, ''), COALESCE(reset_token, ''), created_at, updated_at`

// UserRepository implements repositories.UserRepository on PostgreSQL.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository creates a new user repository.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Avatar,
		&user.Role,
		&user.Confirmed,
		&user.Banned,
		&user.RefreshToken,
		&user.ResetToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. A duplicate email maps to ErrAccountExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (username, email, password_hash, avatar, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Avatar,
		user.Role,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			log.Debug(ctx, "duplicate email on user creation", zap.String("email", user.Email))
			return nil, entities.ErrAccountExists
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// FindByID finds a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return user, nil
}

// FindByEmail finds a user by email, the canonical token subject.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) updateColumn(ctx context.Context, method, query string, args ...interface{}) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error updating user", zap.Error(err))
		return fmt.Errorf("error updating user: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for update")
		return entities.ErrUserNotFound
	}

	return nil
}

// UpdateRefreshToken overwrites the single on-file refresh token. An empty
// token clears the slot.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, email, token string) error {
	query := `
        UPDATE users
        SET refresh_token = NULLIF($2, ''), updated_at = now()
        WHERE email = $1
    `
	return r.updateColumn(ctx, "UpdateRefreshToken", query, email, token)
}

// UpdateResetToken overwrites the stored password-reset token.
func (r *UserRepository) UpdateResetToken(ctx context.Context, email, token string) error {
	query := `
        UPDATE users
        SET reset_token = NULLIF($2, ''), updated_at = now()
        WHERE email = $1
    `
	return r.updateColumn(ctx, "UpdateResetToken", query, email, token)
}

// UpdatePassword replaces the password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := `
        UPDATE users
        SET password_hash = $2, updated_at = now()
        WHERE email = $1
    `
	return r.updateColumn(ctx, "UpdatePassword", query, email, passwordHash)
}

// ConfirmEmail marks the account as confirmed.
func (r *UserRepository) ConfirmEmail(ctx context.Context, email string) error {
	query := `
        UPDATE users
        SET confirmed = true, updated_at = now()
        WHERE email = $1
    `
	return r.updateColumn(ctx, "ConfirmEmail", query, email)
}

// UpdateRole changes the user's role.
func (r *UserRepository) UpdateRole(ctx context.Context, email string, role entities.Role) error {
	query := `
        UPDATE users
        SET role = $2, updated_at = now()
        WHERE email = $1
    `
	return r.updateColumn(ctx, "UpdateRole", query, email, role)
}

// SetBanned sets or clears the banned flag.
func (r *UserRepository) SetBanned(ctx context.Context, email string, banned bool) error {
	query := `
        UPDATE users
        SET banned = $2, updated_at = now()
        WHERE email = $1
    `
	return r.updateColumn(ctx, "SetBanned", query, email, banned)
}

// UpdateAvatar replaces the avatar link.
func (r *UserRepository) UpdateAvatar(ctx context.Context, email, avatarURL string) error {
	query := `
        UPDATE users
        SET avatar = $2, updated_at = now()
        WHERE email = $1
    `
	return r.updateColumn(ctx, "UpdateAvatar", query, email, avatarURL)
}

// UpdateUsername changes the display name.
func (r *UserRepository) UpdateUsername(ctx context.Context, email, username string) error {
	query := `
        UPDATE users
        SET username = $2, updated_at = now()
        WHERE email = $1
    `
	return r.updateColumn(ctx, "UpdateUsername", query, email, username)
}

// Search finds users whose username or email contains the query string.
func (r *UserRepository) Search(ctx context.Context, search string) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Search"))

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE username ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query, search)
	if err != nil {
		log.Error(ctx, "error searching users", zap.Error(err))
		return nil, fmt.Errorf("error searching users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error(ctx, "error scanning user row", zap.Error(err))
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// Delete removes a user by ID.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Delete"))

	query := `DELETE FROM users WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting user", zap.Error(err))
		return fmt.Errorf("error deleting user: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for deletion", zap.Int64("id", id))
		return entities.ErrUserNotFound
	}

	return nil
}
