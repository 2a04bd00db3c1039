package dto

// UpdateDescriptionRequest replaces an image description.
type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

// CropRequest selects a crop rendition.
type CropRequest struct {
	Mode   string `json:"mode"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// EffectRequest selects an effect rendition.
type EffectRequest struct {
	Effect string `json:"effect"`
}

// CreateCommentRequest attaches a comment to an image.
type CreateCommentRequest struct {
	ImageID int64  `json:"image_id"`
	Text    string `json:"text"`
}

// UpdateCommentRequest edits a comment.
type UpdateCommentRequest struct {
	Text string `json:"text"`
}

// RateRequest scores an image.
type RateRequest struct {
	ImageID int64 `json:"image_id"`
	Value   int   `json:"value"`
}

// AverageRatingResponse carries the mean score of an image.
type AverageRatingResponse struct {
	ImageID int64   `json:"image_id"`
	Average float64 `json:"average"`
}
