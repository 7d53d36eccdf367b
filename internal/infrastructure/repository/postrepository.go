package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"apen/internal/domain/content"
	"apen/internal/infrastructure/persistence/models"
	apperrors "apen/internal/shared/errors"
)

// PostRepository reads published blog entries.
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// List returns published posts, newest first. limit <= 0 means no limit.
func (r *PostRepository) List(ctx context.Context, limit int) ([]content.Post, error) {
	query := r.db.WithContext(ctx).
		Where("published_at IS NOT NULL").
		Order("published_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.PostModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]content.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].ToDomain())
	}
	return posts, nil
}

// FindBySlug returns one post or a not-found error.
func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (*content.Post, error) {
	var row models.PostModel
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("post not found", slug)
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	post := row.ToDomain()
	return &post, nil
}
