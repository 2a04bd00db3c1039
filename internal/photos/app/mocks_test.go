package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
)

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, image *entities.Image) (*entities.Image, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Image), args.Error(1)
}

func (m *MockImageRepository) FindByID(ctx context.Context, id int64) (*entities.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Image), args.Error(1)
}

func (m *MockImageRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entities.Image, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Image), args.Error(1)
}

func (m *MockImageRepository) UpdateDescription(ctx context.Context, id int64, description string) error {
	return m.Called(ctx, id, description).Error(0)
}

func (m *MockImageRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockImageRepository) Search(ctx context.Context, filter repositories.SearchFilter) ([]*entities.Image, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Image), args.Error(1)
}

func (m *MockImageRepository) SaveTransformed(ctx context.Context, t *entities.TransformedImage) (*entities.TransformedImage, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TransformedImage), args.Error(1)
}

func (m *MockImageRepository) FindTransformed(ctx context.Context, id int64) (*entities.TransformedImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TransformedImage), args.Error(1)
}

func (m *MockImageRepository) ListTransformed(ctx context.Context, imageID int64) ([]*entities.TransformedImage, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TransformedImage), args.Error(1)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *entities.Rating) (*entities.Rating, error) {
	args := m.Called(ctx, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Rating), args.Error(1)
}

func (m *MockRatingRepository) Average(ctx context.Context, imageID int64) (float64, error) {
	args := m.Called(ctx, imageID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRatingRepository) ListByImage(ctx context.Context, imageID int64) ([]*entities.Rating, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Rating), args.Error(1)
}

func (m *MockRatingRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) GetOrCreate(ctx context.Context, names []string) ([]entities.Tag, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Tag), args.Error(1)
}

func (m *MockTagRepository) Attach(ctx context.Context, imageID int64, tagIDs []int64) error {
	return m.Called(ctx, imageID, tagIDs).Error(0)
}

func (m *MockTagRepository) ListByImage(ctx context.Context, imageID int64) ([]entities.Tag, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Tag), args.Error(1)
}

type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockMediaStorage) CropURL(link string, mode entities.CropMode, width, height int) (string, error) {
	args := m.Called(link, mode, width, height)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStorage) EffectURL(link string, effect entities.Effect) (string, error) {
	args := m.Called(link, effect)
	return args.String(0), args.Error(1)
}
