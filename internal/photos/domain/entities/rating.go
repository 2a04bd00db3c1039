package entities

import (
	"errors"
	"time"
)

var (
	ErrRatingNotFound  = errors.New("rating not found")
	ErrInvalidRating   = errors.New("rating must be between one and five")
	ErrOwnImageRating  = errors.New("rating your own image is not allowed")
	ErrDuplicateRating = errors.New("image already rated by this user")
)

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a single 1-5 score a user gave an image.
type Rating struct {
	ID        int64     `json:"id"`
	ImageID   int64     `json:"image_id"`
	UserID    int64     `json:"user_id"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRating reports whether the score is inside the allowed range.
func ValidRating(value int) bool {
	return value >= MinRating && value <= MaxRating
}
