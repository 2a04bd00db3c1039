// Package entities holds the photo subsystem domain model.
package entities

import (
	"errors"
	"time"
)

var (
	ErrImageNotFound      = errors.New("image not found")
	ErrEmptyDescription   = errors.New("description must not be empty")
	ErrImageTooLarge      = errors.New("image exceeds the maximum allowed size")
	ErrTooManyTags        = errors.New("an image can carry at most five tags")
	ErrNotImageOwner      = errors.New("operation allowed only for the image owner")
	ErrUnknownCrop        = errors.New("unknown crop mode")
	ErrUnknownEffect      = errors.New("unknown effect")
	ErrUnsupportedContent = errors.New("unsupported content type")
)

// MaxImageSize bounds uploads at five megabytes.
const MaxImageSize = 5 * 1024 * 1024

// MaxTagsPerImage bounds the tag list attached to a single image.
const MaxTagsPerImage = 5

// CropMode selects a named crop rendition.
type CropMode string

const (
	CropFill  CropMode = "fill"
	CropFit   CropMode = "fit"
	CropScale CropMode = "scale"
	CropThumb CropMode = "thumb"
)

// Valid reports whether the crop mode is one of the supported renditions.
func (c CropMode) Valid() bool {
	switch c {
	case CropFill, CropFit, CropScale, CropThumb:
		return true
	}
	return false
}

// Effect selects a named visual effect rendition.
type Effect string

const (
	EffectGrayscale Effect = "grayscale"
	EffectSepia     Effect = "sepia"
	EffectBlur      Effect = "blur"
	EffectSharpen   Effect = "sharpen"
)

// Valid reports whether the effect is one of the supported renditions.
func (e Effect) Valid() bool {
	switch e {
	case EffectGrayscale, EffectSepia, EffectBlur, EffectSharpen:
		return true
	}
	return false
}

// SortOrder orders image search results.
type SortOrder string

const (
	SortByDate   SortOrder = "date"
	SortByRating SortOrder = "rating"
)

// Image is an uploaded photo with its stored object link.
type Image struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Tags        []Tag     `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransformedImage is a rendition of an image addressed by a remote
// transformation URL.
type TransformedImage struct {
	ID        int64     `json:"id"`
	ImageID   int64     `json:"image_id"`
	Link      string    `json:"link"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
