package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
)

func TestUploadValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		data        []byte
		contentType string
		description string
		tags        []string
		wantErr     error
	}{
		{
			name:        "empty payload",
			data:        nil,
			contentType: "image/jpeg",
			description: "sunset",
			wantErr:     entities.ErrImageTooLarge,
		},
		{
			name:        "oversized payload",
			data:        bytes.Repeat([]byte{0xff}, entities.MaxImageSize+1),
			contentType: "image/jpeg",
			description: "sunset",
			wantErr:     entities.ErrImageTooLarge,
		},
		{
			name:        "non-image content type",
			data:        []byte("plain text"),
			contentType: "text/plain",
			description: "sunset",
			wantErr:     entities.ErrUnsupportedContent,
		},
		{
			name:        "empty description",
			data:        []byte("jpeg bytes"),
			contentType: "image/jpeg",
			description: "",
			wantErr:     entities.ErrEmptyDescription,
		},
		{
			name:        "too many tags",
			data:        []byte("jpeg bytes"),
			contentType: "image/jpeg",
			description: "sunset",
			tags:        []string{"a", "b", "c", "d", "e", "f"},
			wantErr:     entities.ErrTooManyTags,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := new(MockImageRepository)
			tags := new(MockTagRepository)
			media := new(MockMediaStorage)
			useCase := NewImageUseCase(images, tags, media)

			_, err := useCase.Upload(ctx, testActor(1), tt.data, tt.contentType, tt.description, tt.tags)
			require.ErrorIs(t, err, tt.wantErr)
			media.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUploadStoresUnderOwnerKey(t *testing.T) {
	ctx := context.Background()
	images := new(MockImageRepository)
	tags := new(MockTagRepository)
	media := new(MockMediaStorage)

	actor := testActor(7)
	data := []byte("jpeg bytes")

	media.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "images/7/")
	}), data, "image/jpeg").Return("https://cdn.example.com/images/7/abc", nil)
	images.On("Create", mock.Anything, mock.Anything).
		Return(&entities.Image{ID: 1, OwnerID: actor.ID, Link: "https://cdn.example.com/images/7/abc", Description: "sunset"}, nil)
	tags.On("GetOrCreate", mock.Anything, []string{"nature", "sky"}).
		Return([]entities.Tag{{ID: 1, Name: "nature"}, {ID: 2, Name: "sky"}}, nil)
	tags.On("Attach", mock.Anything, int64(1), []int64{1, 2}).Return(nil)

	useCase := NewImageUseCase(images, tags, media)

	image, err := useCase.Upload(ctx, actor, data, "image/jpeg", "sunset", []string{"nature", "sky"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), image.ID)
	require.Len(t, image.Tags, 2)

	media.AssertExpectations(t)
	tags.AssertExpectations(t)
}

func TestUpdateDescriptionNotOwner(t *testing.T) {
	ctx := context.Background()
	images := new(MockImageRepository)

	images.On("FindByID", mock.Anything, int64(10)).
		Return(&entities.Image{ID: 10, OwnerID: 99}, nil)

	useCase := NewImageUseCase(images, new(MockTagRepository), new(MockMediaStorage))

	_, err := useCase.UpdateDescription(ctx, testActor(1), 10, "new description")
	require.ErrorIs(t, err, entities.ErrNotImageOwner)
	images.AssertNotCalled(t, "UpdateDescription", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteNotOwner(t *testing.T) {
	ctx := context.Background()
	images := new(MockImageRepository)

	images.On("FindByID", mock.Anything, int64(10)).
		Return(&entities.Image{ID: 10, OwnerID: 99}, nil)

	useCase := NewImageUseCase(images, new(MockTagRepository), new(MockMediaStorage))

	err := useCase.Delete(ctx, testActor(1), 10)
	require.ErrorIs(t, err, entities.ErrNotImageOwner)
	images.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCropRecordsRendition(t *testing.T) {
	ctx := context.Background()
	images := new(MockImageRepository)
	media := new(MockMediaStorage)

	actor := testActor(7)
	images.On("FindByID", mock.Anything, int64(10)).
		Return(&entities.Image{ID: 10, OwnerID: actor.ID, Link: "https://cdn.example.com/images/7/abc"}, nil)
	media.On("CropURL", "https://cdn.example.com/images/7/abc", entities.CropFill, 250, 250).
		Return("https://proxy.example.com/crop/fill/250x250?source=abc", nil)
	images.On("SaveTransformed", mock.Anything, mock.MatchedBy(func(rendition *entities.TransformedImage) bool {
		return rendition.ImageID == 10 && rendition.Kind == "crop:fill"
	})).Return(&entities.TransformedImage{ID: 1, ImageID: 10, Kind: "crop:fill"}, nil)

	useCase := NewImageUseCase(images, new(MockTagRepository), media)

	rendition, err := useCase.Crop(ctx, actor, 10, entities.CropFill, 250, 250)
	require.NoError(t, err)
	assert.Equal(t, "crop:fill", rendition.Kind)
	images.AssertExpectations(t)
}

func TestQRCodeEncodesRenditionLink(t *testing.T) {
	ctx := context.Background()
	images := new(MockImageRepository)

	images.On("FindTransformed", mock.Anything, int64(5)).
		Return(&entities.TransformedImage{ID: 5, ImageID: 10, Link: "https://proxy.example.com/crop/fill/250x250?source=abc"}, nil)

	useCase := NewImageUseCase(images, new(MockTagRepository), new(MockMediaStorage))

	png, err := useCase.QRCode(ctx, 5)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
	images.AssertExpectations(t)
}

func TestQRCodeUnknownRendition(t *testing.T) {
	ctx := context.Background()
	images := new(MockImageRepository)

	images.On("FindTransformed", mock.Anything, int64(404)).
		Return(nil, entities.ErrImageNotFound)

	useCase := NewImageUseCase(images, new(MockTagRepository), new(MockMediaStorage))

	_, err := useCase.QRCode(ctx, 404)
	require.ErrorIs(t, err, entities.ErrImageNotFound)
}

func TestApplyEffectNotOwner(t *testing.T) {
	ctx := context.Background()
	images := new(MockImageRepository)
	media := new(MockMediaStorage)

	images.On("FindByID", mock.Anything, int64(10)).
		Return(&entities.Image{ID: 10, OwnerID: 99}, nil)

	useCase := NewImageUseCase(images, new(MockTagRepository), media)

	_, err := useCase.ApplyEffect(ctx, testActor(1), 10, entities.EffectSepia)
	require.ErrorIs(t, err, entities.ErrNotImageOwner)
	media.AssertNotCalled(t, "EffectURL", mock.Anything, mock.Anything)
}
