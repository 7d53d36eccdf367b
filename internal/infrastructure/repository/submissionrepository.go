package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"apen/internal/domain/contact"
	"apen/internal/infrastructure/persistence/models"
)

// SubmissionRepository writes the contact-form audit trail.
type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Save(ctx context.Context, s *contact.Submission) error {
	model := models.FromSubmission(s)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}
