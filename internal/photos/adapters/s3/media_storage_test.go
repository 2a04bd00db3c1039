package s3

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
)

func newTestStorage(t *testing.T) *MediaStorage {
	t.Helper()

	storage, err := NewMediaStorage(context.Background(), Config{
		Region:         "us-east-1",
		Endpoint:       "http://localhost:9000",
		Bucket:         "photos",
		AccessKey:      "test",
		SecretKey:      "test",
		PublicBaseURL:  "https://cdn.example.com/",
		MediaProxyBase: "https://proxy.example.com/",
	})
	require.NoError(t, err)

	return storage.(*MediaStorage)
}

func TestCropURL(t *testing.T) {
	storage := newTestStorage(t)

	link, err := storage.CropURL("https://cdn.example.com/photos/images/7/abc", entities.CropFill, 250, 250)
	require.NoError(t, err)
	assert.Equal(t,
		"https://proxy.example.com/crop/fill/250x250?source=https%3A%2F%2Fcdn.example.com%2Fphotos%2Fimages%2F7%2Fabc",
		link)
}

func TestCropURLUnknownMode(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.CropURL("https://cdn.example.com/photos/images/7/abc", entities.CropMode("stretch"), 100, 100)
	require.ErrorIs(t, err, entities.ErrUnknownCrop)
}

func TestEffectURL(t *testing.T) {
	storage := newTestStorage(t)

	link, err := storage.EffectURL("https://cdn.example.com/photos/images/7/abc", entities.EffectSepia)
	require.NoError(t, err)
	assert.Equal(t,
		"https://proxy.example.com/effect/sepia?source=https%3A%2F%2Fcdn.example.com%2Fphotos%2Fimages%2F7%2Fabc",
		link)
}

func TestEffectURLUnknownEffect(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.EffectURL("https://cdn.example.com/photos/images/7/abc", entities.Effect("invert"))
	require.ErrorIs(t, err, entities.ErrUnknownEffect)
}
