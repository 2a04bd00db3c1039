package entities

import (
	"errors"
	"time"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyComment    = errors.New("comment text must not be empty")
	ErrNotCommentOwner = errors.New("operation allowed only for the comment author")
)

// Comment is a user's comment on an image.
type Comment struct {
	ID        int64     `json:"id"`
	ImageID   int64     `json:"image_id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
