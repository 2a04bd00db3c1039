package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authentities "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
)

func testActor(id int64) *authentities.User {
	return &authentities.User{
		ID:        id,
		Username:  "alice",
		Email:     "alice@example.com",
		Role:      authentities.RoleUser,
		Confirmed: true,
	}
}

func TestRateOutOfRangeValue(t *testing.T) {
	ctx := context.Background()

	for _, value := range []int{0, -1, 6, 100} {
		ratings := new(MockRatingRepository)
		images := new(MockImageRepository)
		useCase := NewRatingUseCase(ratings, images)

		_, err := useCase.Rate(ctx, testActor(2), 10, value)
		require.ErrorIs(t, err, entities.ErrInvalidRating)
		images.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	}
}

func TestRateOwnImageRejected(t *testing.T) {
	ctx := context.Background()
	ratings := new(MockRatingRepository)
	images := new(MockImageRepository)

	owner := testActor(7)
	images.On("FindByID", mock.Anything, int64(10)).
		Return(&entities.Image{ID: 10, OwnerID: owner.ID}, nil)

	useCase := NewRatingUseCase(ratings, images)

	_, err := useCase.Rate(ctx, owner, 10, 4)
	require.ErrorIs(t, err, entities.ErrOwnImageRating)
	ratings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRateDuplicatePropagates(t *testing.T) {
	ctx := context.Background()
	ratings := new(MockRatingRepository)
	images := new(MockImageRepository)

	images.On("FindByID", mock.Anything, int64(10)).
		Return(&entities.Image{ID: 10, OwnerID: 99}, nil)
	ratings.On("Create", mock.Anything, mock.Anything).
		Return(nil, entities.ErrDuplicateRating)

	useCase := NewRatingUseCase(ratings, images)

	_, err := useCase.Rate(ctx, testActor(2), 10, 4)
	require.ErrorIs(t, err, entities.ErrDuplicateRating)
}

func TestRateStoresRating(t *testing.T) {
	ctx := context.Background()
	ratings := new(MockRatingRepository)
	images := new(MockImageRepository)

	actor := testActor(2)
	images.On("FindByID", mock.Anything, int64(10)).
		Return(&entities.Image{ID: 10, OwnerID: 99}, nil)
	ratings.On("Create", mock.Anything, &entities.Rating{ImageID: 10, UserID: actor.ID, Value: 5}).
		Return(&entities.Rating{ID: 1, ImageID: 10, UserID: actor.ID, Value: 5}, nil)

	useCase := NewRatingUseCase(ratings, images)

	rating, err := useCase.Rate(ctx, actor, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, rating.Value)
	ratings.AssertExpectations(t)
}

func TestAverageUnknownImage(t *testing.T) {
	ctx := context.Background()
	ratings := new(MockRatingRepository)
	images := new(MockImageRepository)

	images.On("FindByID", mock.Anything, int64(10)).
		Return(nil, entities.ErrImageNotFound)

	useCase := NewRatingUseCase(ratings, images)

	_, err := useCase.Average(ctx, 10)
	require.ErrorIs(t, err, entities.ErrImageNotFound)
	ratings.AssertNotCalled(t, "Average", mock.Anything, mock.Anything)
}
