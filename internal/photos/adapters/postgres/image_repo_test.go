package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
)

func TestImageRepositoryFindTransformed(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewImageRepository(mockPool)

	mockPool.ExpectQuery("SELECT id, image_id, link, kind, created_at").
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "image_id", "link", "kind", "created_at"}).
			AddRow(int64(5), int64(10), "https://proxy.example.com/crop/fill/250x250?source=abc", "crop:fill", time.Now()))

	rendition, err := repo.FindTransformed(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), rendition.ImageID)
	assert.Equal(t, "crop:fill", rendition.Kind)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestImageRepositoryFindTransformedNotFound(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewImageRepository(mockPool)

	mockPool.ExpectQuery("SELECT id, image_id, link, kind, created_at").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "image_id", "link", "kind", "created_at"}))

	_, err := repo.FindTransformed(ctx, 99)
	require.ErrorIs(t, err, entities.ErrImageNotFound)

	require.NoError(t, mockPool.ExpectationsWereMet())
}
