package entities

import "errors"

var ErrEmptyTag = errors.New("tag name must not be empty")

// Tag is a reusable label attached to images.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
