// Package services declares the external collaborators of the photo subsystem.
package services

import (
	"context"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
)

// MediaStorage stores image bytes and addresses their renditions.
// Transformation itself happens remotely: TransformURL only builds the
// link a media proxy resolves on demand.
type MediaStorage interface {
	// Upload stores the object under the given key and returns its
	// public link.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the stored object. Deleting a missing object is
	// not an error.
	Delete(ctx context.Context, key string) error

	// CropURL builds the link of a crop rendition with the given
	// dimensions.
	CropURL(link string, mode entities.CropMode, width, height int) (string, error)

	// EffectURL builds the link of an effect rendition.
	EffectURL(link string, effect entities.Effect) (string, error)
}
