package models

import (
	"time"

	"apen/internal/domain/contact"
)

// SubmissionModel is the audit record of one accepted contact-form
// submission. Rows are written before dispatch and never updated.
type SubmissionModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:320;not null;index"`
	Phone     string `gorm:"size:50;not null"`
	Service   string `gorm:"size:200;not null"`
	Date      string `gorm:"size:10;not null"`
	Time      string `gorm:"size:5;not null"`
	Message   string `gorm:"type:text"`
	Language  string `gorm:"size:2;not null"`
	CreatedAt time.Time
}

func (SubmissionModel) TableName() string {
	return "contact_submissions"
}

// FromSubmission maps a validated domain submission to its audit row.
func FromSubmission(s *contact.Submission) *SubmissionModel {
	return &SubmissionModel{
		Name:      s.Name(),
		Email:     s.Email(),
		Phone:     s.Phone(),
		Service:   s.Service(),
		Date:      s.Date(),
		Time:      s.Time(),
		Message:   s.Message(),
		Language:  s.Language().String(),
		CreatedAt: s.CreatedAt(),
	}
}
