package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/api"
	cacheports "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/cache"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/ports/repositories"
	photoentities "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	mediaports "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/services"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	methodGetProfile   = "GetProfile"
	methodUpdateAvatar = "UpdateAvatar"
	methodUpdateName   = "UpdateName"

	msgAvatarUpdated = "avatar updated"
	msgNameUpdated   = "display name updated"

	errCtxLoadingProfile  = "loading profile"
	errCtxUploadingAvatar = "uploading avatar"
	errCtxUpdatingAvatar  = "updating avatar"
	errCtxUpdatingName    = "updating display name"

	avatarSide = 250
)

// UserUseCaseImpl implements api.UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
	sessions cacheports.SessionCache
	media    mediaports.MediaStorage
}

// NewUserUseCase creates the self-service profile use case.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	sessions cacheports.SessionCache,
	media mediaports.MediaStorage,
) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo, sessions: sessions, media: media}
}

// GetProfile loads the account of the given email.
func (u *UserUseCaseImpl) GetProfile(ctx context.Context, email string) (*entities.User, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingProfile, err)
	}
	return user, nil
}

// UpdateAvatar stores the uploaded image and sets a 250x250 fill-crop
// rendition as the user's avatar link.
func (u *UserUseCaseImpl) UpdateAvatar(ctx context.Context, user *entities.User, data []byte, contentType string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateAvatar), zap.Int64("userID", user.ID))

	if len(data) == 0 || len(data) > photoentities.MaxImageSize {
		return nil, fmt.Errorf("%s: %w", errCtxUploadingAvatar, photoentities.ErrImageTooLarge)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%s: %w", errCtxUploadingAvatar, photoentities.ErrUnsupportedContent)
	}

	key := fmt.Sprintf("avatars/%d/%s", user.ID, uuid.NewString())
	link, err := u.media.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUploadingAvatar, err)
	}

	avatarURL, err := u.media.CropURL(link, photoentities.CropFill, avatarSide, avatarSide)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUploadingAvatar, err)
	}

	if err := u.userRepo.UpdateAvatar(ctx, user.Email, avatarURL); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingAvatar, err)
	}

	if err := u.sessions.Invalidate(ctx, user.Email); err != nil {
		log.Warn(ctx, msgErrSessionCacheWrite, zap.Error(err))
	}

	updated := *user
	updated.Avatar = avatarURL
	log.Info(ctx, msgAvatarUpdated)
	return &updated, nil
}

// UpdateName changes the user's display name.
func (u *UserUseCaseImpl) UpdateName(ctx context.Context, user *entities.User, name string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateName), zap.Int64("userID", user.ID))

	if name == "" {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingName, entities.ErrEmptyUsername)
	}

	if err := u.userRepo.UpdateUsername(ctx, user.Email, name); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingName, err)
	}

	if err := u.sessions.Invalidate(ctx, user.Email); err != nil {
		log.Warn(ctx, msgErrSessionCacheWrite, zap.Error(err))
	}

	updated := *user
	updated.Username = name
	log.Info(ctx, msgNameUpdated)
	return &updated, nil
}
