// Package app contains the photo subsystem use cases.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	authentities "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
	mediaports "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/services"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	methodUploadImage = "Upload"
	methodDeleteImage = "Delete"
	methodCropImage   = "Crop"
	methodApplyEffect = "ApplyEffect"

	msgImageUploaded  = "image uploaded"
	msgImageDeleted   = "image deleted"
	msgRenditionSaved = "rendition link recorded"

	errCtxValidatingUpload  = "validating upload"
	errCtxStoringObject     = "storing object"
	errCtxCreatingImage     = "creating image record"
	errCtxResolvingTags     = "resolving tags"
	errCtxLoadingImage      = "loading image"
	errCtxLoadingRendition  = "loading rendition"
	errCtxCheckingOwnership = "checking ownership"
	errCtxUpdatingImage     = "updating image"
	errCtxDeletingImage     = "deleting image"
	errCtxSavingRendition   = "saving rendition"
	errCtxEncodingQRCode    = "encoding qr code"
)

// qrCodeSize is the side length in pixels of generated QR code PNGs.
const qrCodeSize = 256

// ImageUseCaseImpl implements api.ImageUseCase.
type ImageUseCaseImpl struct {
	images repositories.ImageRepository
	tags   repositories.TagRepository
	media  mediaports.MediaStorage
}

// NewImageUseCase creates the image lifecycle use case.
func NewImageUseCase(
	images repositories.ImageRepository,
	tags repositories.TagRepository,
	media mediaports.MediaStorage,
) api.ImageUseCase {
	return &ImageUseCaseImpl{images: images, tags: tags, media: media}
}

// Upload validates the file, stores it under a per-user key and records
// the image with its tags. At most five tags, resolved get-or-create.
func (u *ImageUseCaseImpl) Upload(ctx context.Context, actor *authentities.User, data []byte, contentType, description string, tagNames []string) (*entities.Image, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUploadImage), zap.Int64("userID", actor.ID))

	if len(data) == 0 || len(data) > entities.MaxImageSize {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUpload, entities.ErrImageTooLarge)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUpload, entities.ErrUnsupportedContent)
	}
	if description == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUpload, entities.ErrEmptyDescription)
	}
	if len(tagNames) > entities.MaxTagsPerImage {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUpload, entities.ErrTooManyTags)
	}

	key := fmt.Sprintf("images/%d/%s", actor.ID, uuid.NewString())
	link, err := u.media.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxStoringObject, err)
	}

	image, err := u.images.Create(ctx, &entities.Image{
		OwnerID:     actor.ID,
		Link:        link,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingImage, err)
	}

	if len(tagNames) > 0 {
		tags, err := u.tags.GetOrCreate(ctx, tagNames)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxResolvingTags, err)
		}

		tagIDs := make([]int64, 0, len(tags))
		for _, tag := range tags {
			tagIDs = append(tagIDs, tag.ID)
		}
		if err := u.tags.Attach(ctx, image.ID, tagIDs); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxResolvingTags, err)
		}
		image.Tags = tags
	}

	log.Info(ctx, msgImageUploaded, zap.Int64("imageID", image.ID))
	return image, nil
}

// Get loads an image with its tags.
func (u *ImageUseCaseImpl) Get(ctx context.Context, id int64) (*entities.Image, error) {
	image, err := u.images.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingImage, err)
	}

	tags, err := u.tags.ListByImage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxResolvingTags, err)
	}
	image.Tags = tags

	return image, nil
}

// UpdateDescription replaces the description. Owner only.
func (u *ImageUseCaseImpl) UpdateDescription(ctx context.Context, actor *authentities.User, id int64, description string) (*entities.Image, error) {
	if description == "" {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingImage, entities.ErrEmptyDescription)
	}

	image, err := u.ownedImage(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := u.images.UpdateDescription(ctx, id, description); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingImage, err)
	}
	image.Description = description

	return image, nil
}

// Delete removes an image. Owner only.
func (u *ImageUseCaseImpl) Delete(ctx context.Context, actor *authentities.User, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteImage), zap.Int64("imageID", id))

	if _, err := u.ownedImage(ctx, actor, id); err != nil {
		return err
	}

	if err := u.images.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingImage, err)
	}

	log.Info(ctx, msgImageDeleted)
	return nil
}

// Search filters images by description substring or tag.
func (u *ImageUseCaseImpl) Search(ctx context.Context, filter repositories.SearchFilter) ([]*entities.Image, error) {
	images, err := u.images.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingImage, err)
	}
	return images, nil
}

// Crop builds and records a crop rendition link. Owner only. The rendition
// is rendered remotely on first fetch, never here.
func (u *ImageUseCaseImpl) Crop(ctx context.Context, actor *authentities.User, id int64, mode entities.CropMode, width, height int) (*entities.TransformedImage, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCropImage), zap.Int64("imageID", id))

	image, err := u.ownedImage(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	link, err := u.media.CropURL(image.Link, mode, width, height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSavingRendition, err)
	}

	saved, err := u.images.SaveTransformed(ctx, &entities.TransformedImage{
		ImageID: id,
		Link:    link,
		Kind:    fmt.Sprintf("crop:%s", mode),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSavingRendition, err)
	}

	log.Info(ctx, msgRenditionSaved, zap.String("kind", saved.Kind))
	return saved, nil
}

// ApplyEffect builds and records an effect rendition link. Owner only.
func (u *ImageUseCaseImpl) ApplyEffect(ctx context.Context, actor *authentities.User, id int64, effect entities.Effect) (*entities.TransformedImage, error) {
	log := logger.Log(ctx).With(zap.String("method", methodApplyEffect), zap.Int64("imageID", id))

	image, err := u.ownedImage(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	link, err := u.media.EffectURL(image.Link, effect)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSavingRendition, err)
	}

	saved, err := u.images.SaveTransformed(ctx, &entities.TransformedImage{
		ImageID: id,
		Link:    link,
		Kind:    fmt.Sprintf("effect:%s", effect),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSavingRendition, err)
	}

	log.Info(ctx, msgRenditionSaved, zap.String("kind", saved.Kind))
	return saved, nil
}

// QRCode renders a PNG QR code for a recorded rendition link, so a phone
// can open a crop or effect rendition straight from the screen.
func (u *ImageUseCaseImpl) QRCode(ctx context.Context, transformedID int64) ([]byte, error) {
	rendition, err := u.images.FindTransformed(ctx, transformedID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingRendition, err)
	}

	png, err := qrcode.Encode(rendition.Link, qrcode.Medium, qrCodeSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxEncodingQRCode, err)
	}

	return png, nil
}

func (u *ImageUseCaseImpl) ownedImage(ctx context.Context, actor *authentities.User, id int64) (*entities.Image, error) {
	image, err := u.images.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingImage, err)
	}
	if image.OwnerID != actor.ID {
		return nil, fmt.Errorf("%s: %w", errCtxCheckingOwnership, entities.ErrNotImageOwner)
	}
	return image, nil
}
