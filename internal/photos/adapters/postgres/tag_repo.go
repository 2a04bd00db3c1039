package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/domain/entities"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/ports/repositories"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
)

// TagRepository implements repositories.TagRepository on PostgreSQL.
type TagRepository struct {
	pool PgxPoolInterface
}

// NewTagRepository creates a new tag repository.
func NewTagRepository(pool PgxPoolInterface) repositories.TagRepository {
	return &TagRepository{pool: pool}
}

// GetOrCreate resolves tag names to tags, inserting missing ones. The
// upsert keeps concurrent callers from racing on the name unique index.
func (r *TagRepository) GetOrCreate(ctx context.Context, names []string) ([]entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "GetOrCreate"))

	query := `
        INSERT INTO tags (name)
        VALUES ($1)
        ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
        RETURNING id, name
    `

	tags := make([]entities.Tag, 0, len(names))
	for _, name := range names {
		if name == "" {
			return nil, entities.ErrEmptyTag
		}

		var tag entities.Tag
		if err := r.pool.QueryRow(ctx, query, name).Scan(&tag.ID, &tag.Name); err != nil {
			log.Error(ctx, "error upserting tag", zap.Error(err), zap.String("name", name))
			return nil, fmt.Errorf("error upserting tag: %w", err)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// Attach links the tags to an image, replacing the previous set.
func (r *TagRepository) Attach(ctx context.Context, imageID int64, tagIDs []int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Attach"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM image_tags WHERE image_id = $1`, imageID); err != nil {
		log.Error(ctx, "error clearing image tags", zap.Error(err))
		return fmt.Errorf("error clearing image tags: %w", err)
	}

	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO image_tags (image_id, tag_id) VALUES ($1, $2)`, imageID, tagID); err != nil {
			log.Error(ctx, "error attaching tag", zap.Error(err), zap.Int64("tagID", tagID))
			return fmt.Errorf("error attaching tag: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing tag attachment: %w", err)
	}

	return nil
}

// ListByImage lists the tags attached to an image.
func (r *TagRepository) ListByImage(ctx context.Context, imageID int64) ([]entities.Tag, error) {
	query := `
        SELECT t.id, t.name
        FROM tags t
        JOIN image_tags it ON it.tag_id = t.id
        WHERE it.image_id = $1
        ORDER BY t.name
    `

	rows, err := r.pool.Query(ctx, query, imageID)
	if err != nil {
		return nil, fmt.Errorf("error querying image tags: %w", err)
	}
	defer rows.Close()

	var tags []entities.Tag
	for rows.Next() {
		var tag entities.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("error scanning tag row: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return tags, nil
}
