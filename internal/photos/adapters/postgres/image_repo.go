package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

const imageColumns = `id, owner_id, link, description, created_at, updated_at`

// ImageRepository implements repositories.ImageRepository on PostgreSQL.
type ImageRepository struct {
	pool PgxPoolInterface
}

// NewImageRepository creates a new image repository.
func NewImageRepository(pool PgxPoolInterface) repositories.ImageRepository {
	return &ImageRepository{pool: pool}
}

func scanImage(row pgx.Row) (*entities.Image, error) {
	var image entities.Image
	err := row.Scan(
		&image.ID,
		&image.OwnerID,
		&image.Link,
		&image.Description,
		&image.CreatedAt,
		&image.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Create inserts a new image record.
func (r *ImageRepository) Create(ctx context.Context, image *entities.Image) (*entities.Image, error) {
	log := logger.Log(ctx).With(zap.String("repository", "image"), zap.String("method", "Create"))

	query := `
        INSERT INTO images (owner_id, link, description)
        VALUES ($1, $2, $3)
        RETURNING ` + imageColumns

	created, err := scanImage(r.pool.QueryRow(ctx, query, image.OwnerID, image.Link, image.Description))
	if err != nil {
		log.Error(ctx, "error creating image", zap.Error(err))
		return nil, fmt.Errorf("error creating image: %w", err)
	}

	return created, nil
}

// FindByID finds an image by primary key.
func (r *ImageRepository) FindByID(ctx context.Context, id int64) (*entities.Image, error) {
	log := logger.Log(ctx).With(zap.String("repository", "image"), zap.String("method", "FindByID"))

	query := `SELECT ` + imageColumns + ` FROM images WHERE id = $1`

	image, err := scanImage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "image not found", zap.Int64("id", id))
			return nil, entities.ErrImageNotFound
		}
		log.Error(ctx, "error finding image", zap.Error(err))
		return nil, fmt.Errorf("error querying image: %w", err)
	}

	return image, nil
}

// FindByOwner lists a user's images, newest first.
func (r *ImageRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entities.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying images by owner: %w", err)
	}
	defer rows.Close()

	return collectImages(rows)
}

// UpdateDescription replaces the description text.
func (r *ImageRepository) UpdateDescription(ctx context.Context, id int64, description string) error {
	log := logger.Log(ctx).With(zap.String("repository", "image"), zap.String("method", "UpdateDescription"))

	query := `
        UPDATE images
        SET description = $2, updated_at = now()
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id, description)
	if err != nil {
		log.Error(ctx, "error updating image description", zap.Error(err))
		return fmt.Errorf("error updating image description: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrImageNotFound
	}

	return nil
}

// Delete removes an image; renditions and tag links go with it via
// ON DELETE CASCADE.
func (r *ImageRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "image"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting image", zap.Error(err))
		return fmt.Errorf("error deleting image: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrImageNotFound
	}

	return nil
}

// Search filters images by description substring and tag name, ordered by
// creation date or average rating.
func (r *ImageRepository) Search(ctx context.Context, filter repositories.SearchFilter) ([]*entities.Image, error) {
	log := logger.Log(ctx).With(zap.String("repository", "image"), zap.String("method", "Search"))

	orderBy := "i.created_at DESC"
	if filter.OrderBy == entities.SortByRating {
		orderBy = "COALESCE((SELECT AVG(r.value) FROM ratings r WHERE r.image_id = i.id), 0) DESC"
	}

	query := `
        SELECT i.id, i.owner_id, i.link, i.description, i.created_at, i.updated_at
        FROM images i
        WHERE ($1 = '' OR i.description ILIKE '%' || $1 || '%')
          AND ($2 = '' OR EXISTS (
                SELECT 1 FROM image_tags it
                JOIN tags t ON t.id = it.tag_id
                WHERE it.image_id = i.id AND t.name = $2))
        ORDER BY ` + orderBy

	rows, err := r.pool.Query(ctx, query, filter.Query, filter.Tag)
	if err != nil {
		log.Error(ctx, "error searching images", zap.Error(err))
		return nil, fmt.Errorf("error searching images: %w", err)
	}
	defer rows.Close()

	return collectImages(rows)
}

// SaveTransformed records a rendition link for an image.
func (r *ImageRepository) SaveTransformed(ctx context.Context, t *entities.TransformedImage) (*entities.TransformedImage, error) {
	log := logger.Log(ctx).With(zap.String("repository", "image"), zap.String("method", "SaveTransformed"))

	query := `
        INSERT INTO transformed_images (image_id, link, kind)
        VALUES ($1, $2, $3)
        RETURNING id, image_id, link, kind, created_at
    `

	var saved entities.TransformedImage
	err := r.pool.QueryRow(ctx, query, t.ImageID, t.Link, t.Kind).Scan(
		&saved.ID,
		&saved.ImageID,
		&saved.Link,
		&saved.Kind,
		&saved.CreatedAt,
	)
	if err != nil {
		log.Error(ctx, "error saving transformed image", zap.Error(err))
		return nil, fmt.Errorf("error saving transformed image: %w", err)
	}

	return &saved, nil
}

// FindTransformed finds a recorded rendition by primary key.
func (r *ImageRepository) FindTransformed(ctx context.Context, id int64) (*entities.TransformedImage, error) {
	log := logger.Log(ctx).With(zap.String("repository", "image"), zap.String("method", "FindTransformed"))

	query := `
        SELECT id, image_id, link, kind, created_at
        FROM transformed_images
        WHERE id = $1
    `

	var t entities.TransformedImage
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.ImageID,
		&t.Link,
		&t.Kind,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "transformed image not found", zap.Int64("id", id))
			return nil, entities.ErrImageNotFound
		}
		log.Error(ctx, "error finding transformed image", zap.Error(err))
		return nil, fmt.Errorf("error querying transformed image: %w", err)
	}

	return &t, nil
}

// ListTransformed lists the recorded renditions of an image.
func (r *ImageRepository) ListTransformed(ctx context.Context, imageID int64) ([]*entities.TransformedImage, error) {
	query := `
        SELECT id, image_id, link, kind, created_at
        FROM transformed_images
        WHERE image_id = $1
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query, imageID)
	if err != nil {
		return nil, fmt.Errorf("error querying transformed images: %w", err)
	}
	defer rows.Close()

	var result []*entities.TransformedImage
	for rows.Next() {
		var t entities.TransformedImage
		if err := rows.Scan(&t.ID, &t.ImageID, &t.Link, &t.Kind, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning transformed image row: %w", err)
		}
		result = append(result, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transformed image rows: %w", err)
	}

	return result, nil
}

func collectImages(rows pgx.Rows) ([]*entities.Image, error) {
	var images []*entities.Image
	for rows.Next() {
		image, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning image row: %w", err)
		}
		images = append(images, image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating image rows: %w", err)
	}
	return images, nil
}
