package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/api"
	cacheports "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/cache"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/repositories"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	methodChangeUserRole = "ChangeUserRole"
	methodBanUser        = "BanUser"
	methodUnbanUser      = "UnbanUser"
	methodGetUserByID    = "GetUserByID"
	methodSearchUsers    = "SearchUsers"
	methodDeleteUser     = "DeleteUser"

	msgRoleChanged  = "user role changed"
	msgUserBanned   = "user banned"
	msgUserUnbanned = "user unbanned"
	msgUserDeleted  = "user deleted"

	errCtxChangingRole  = "changing user role"
	errCtxBanningUser   = "banning user"
	errCtxUnbanningUser = "unbanning user"
	errCtxSearchingUser = "searching users"
	errCtxDeletingUser  = "deleting user"
)

// AdminUseCaseImpl implements api.AdminUseCase. Every identity-mutating
// operation evicts the subject's session cache entry so role and ban
// changes take effect on the next request rather than after the cache TTL.
type AdminUseCaseImpl struct {
	userRepo repositories.UserRepository
	sessions cacheports.SessionCache
}

// NewAdminUseCase creates the account management use case.
func NewAdminUseCase(userRepo repositories.UserRepository, sessions cacheports.SessionCache) api.AdminUseCase {
	return &AdminUseCaseImpl{userRepo: userRepo, sessions: sessions}
}

// ChangeUserRole sets the role of the account identified by email.
func (a *AdminUseCaseImpl) ChangeUserRole(ctx context.Context, email string, role entities.Role) error {
	log := logger.Log(ctx).With(zap.String("method", methodChangeUserRole), zap.String("email", email))

	if !role.Valid() {
		return fmt.Errorf("%s: %w", errCtxChangingRole, entities.ErrUnknownRole)
	}

	if err := a.userRepo.UpdateRole(ctx, email, role); err != nil {
		return fmt.Errorf("%s: %w", errCtxChangingRole, err)
	}
	a.evict(ctx, email)

	log.Info(ctx, msgRoleChanged, zap.String("role", string(role)))
	return nil
}

// BanUser marks the account banned. Banned accounts fail authentication
// even while holding a valid access token.
func (a *AdminUseCaseImpl) BanUser(ctx context.Context, email string) error {
	log := logger.Log(ctx).With(zap.String("method", methodBanUser), zap.String("email", email))

	if err := a.userRepo.SetBanned(ctx, email, true); err != nil {
		return fmt.Errorf("%s: %w", errCtxBanningUser, err)
	}
	a.evict(ctx, email)

	log.Info(ctx, msgUserBanned)
	return nil
}

// UnbanUser lifts the ban on the account.
func (a *AdminUseCaseImpl) UnbanUser(ctx context.Context, email string) error {
	log := logger.Log(ctx).With(zap.String("method", methodUnbanUser), zap.String("email", email))

	if err := a.userRepo.SetBanned(ctx, email, false); err != nil {
		return fmt.Errorf("%s: %w", errCtxUnbanningUser, err)
	}
	a.evict(ctx, email)

	log.Info(ctx, msgUserUnbanned)
	return nil
}

// GetUserByID loads an account by its numeric identifier.
func (a *AdminUseCaseImpl) GetUserByID(ctx context.Context, id int64) (*entities.User, error) {
	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingProfile, err)
	}
	return user, nil
}

// SearchUsers finds accounts whose username or email matches the query.
func (a *AdminUseCaseImpl) SearchUsers(ctx context.Context, query string) ([]*entities.User, error) {
	users, err := a.userRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSearchingUser, err)
	}
	return users, nil
}

// DeleteUser removes the account and evicts its cached session.
func (a *AdminUseCaseImpl) DeleteUser(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteUser), zap.Int64("userID", id))

	user, err := a.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}

	if err := a.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}
	a.evict(ctx, user.Email)

	log.Info(ctx, msgUserDeleted)
	return nil
}

func (a *AdminUseCaseImpl) evict(ctx context.Context, email string) {
	if err := a.sessions.Invalidate(ctx, email); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrSessionCacheWrite, zap.Error(err))
	}
}
