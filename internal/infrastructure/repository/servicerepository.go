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

// ServiceRepository reads the firm's service pages.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// List returns all services in display order.
func (r *ServiceRepository) List(ctx context.Context) ([]content.Service, error) {
	var rows []models.ServiceModel
	err := r.db.WithContext(ctx).Order("display_order ASC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]content.Service, 0, len(rows))
	for i := range rows {
		services = append(services, rows[i].ToDomain())
	}
	return services, nil
}

// FindBySlug returns one service or a not-found error.
func (r *ServiceRepository) FindBySlug(ctx context.Context, slug string) (*content.Service, error) {
	var row models.ServiceModel
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("service not found", slug)
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}
	service := row.ToDomain()
	return &service, nil
}
