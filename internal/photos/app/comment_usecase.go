package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	authentities "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/api"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const (
	methodCreateComment = "Create"
	methodUpdateComment = "UpdateOwn"

	msgCommentCreated = "comment created"
	msgCommentUpdated = "comment updated"

	errCtxValidatingComment = "validating comment"
	errCtxCreatingComment   = "creating comment"
	errCtxLoadingComment    = "loading comment"
	errCtxUpdatingComment   = "updating comment"
)

// CommentUseCaseImpl implements api.CommentUseCase.
type CommentUseCaseImpl struct {
	comments repositories.CommentRepository
	images   repositories.ImageRepository
}

// NewCommentUseCase creates the comment use case.
func NewCommentUseCase(
	comments repositories.CommentRepository,
	images repositories.ImageRepository,
) api.CommentUseCase {
	return &CommentUseCaseImpl{comments: comments, images: images}
}

// Create attaches a comment to an existing image.
func (u *CommentUseCaseImpl) Create(ctx context.Context, actor *authentities.User, imageID int64, text string) (*entities.Comment, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateComment), zap.Int64("imageID", imageID))

	if text == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingComment, entities.ErrEmptyComment)
	}

	if _, err := u.images.FindByID(ctx, imageID); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingImage, err)
	}

	comment, err := u.comments.Create(ctx, &entities.Comment{
		ImageID: imageID,
		UserID:  actor.ID,
		Text:    text,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingComment, err)
	}

	log.Info(ctx, msgCommentCreated, zap.Int64("commentID", comment.ID))
	return comment, nil
}

// ListByImage lists an image's comments.
func (u *CommentUseCaseImpl) ListByImage(ctx context.Context, imageID int64) ([]*entities.Comment, error) {
	comments, err := u.comments.ListByImage(ctx, imageID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingComment, err)
	}
	return comments, nil
}

// UpdateOwn edits a comment. Only the author may edit; removal of other
// users' comments goes through the moderation use case.
func (u *CommentUseCaseImpl) UpdateOwn(ctx context.Context, actor *authentities.User, commentID int64, text string) (*entities.Comment, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateComment), zap.Int64("commentID", commentID))

	if text == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingComment, entities.ErrEmptyComment)
	}

	comment, err := u.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingComment, err)
	}
	if comment.UserID != actor.ID {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingComment, entities.ErrNotCommentOwner)
	}

	if err := u.comments.UpdateText(ctx, commentID, text); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingComment, err)
	}
	comment.Text = text

	log.Info(ctx, msgCommentUpdated)
	return comment, nil
}
