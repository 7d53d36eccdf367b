package models

import (
	"time"

	"apen/internal/domain/content"
)

// PostModel persists one bilingual blog entry.
type PostModel struct {
	ID          uint       `gorm:"primaryKey"`
	Slug        string     `gorm:"size:200;not null;uniqueIndex"`
	Title       string     `gorm:"size:300;not null"`
	TitleEN     string     `gorm:"size:300"`
	Excerpt     string     `gorm:"type:text"`
	ExcerptEN   string     `gorm:"type:text"`
	Body        string     `gorm:"type:text"`
	BodyEN      string     `gorm:"type:text"`
	PublishedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PostModel) TableName() string {
	return "posts"
}

func (m *PostModel) ToDomain() content.Post {
	return content.Post{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		TitleEN:     m.TitleEN,
		Excerpt:     m.Excerpt,
		ExcerptEN:   m.ExcerptEN,
		Body:        m.Body,
		BodyEN:      m.BodyEN,
		PublishedAt: m.PublishedAt,
	}
}

// ServiceModel persists one of the firm's service pages.
type ServiceModel struct {
	ID            uint   `gorm:"primaryKey"`
	Slug          string `gorm:"size:200;not null;uniqueIndex"`
	Title         string `gorm:"size:300;not null"`
	TitleEN       string `gorm:"size:300"`
	Description   string `gorm:"type:text"`
	DescriptionEN string `gorm:"type:text"`
	Content       string `gorm:"type:text"`
	ContentEN     string `gorm:"type:text"`
	Icon          string `gorm:"size:500"`
	Order         int    `gorm:"column:display_order;not null;default:0;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ServiceModel) TableName() string {
	return "services"
}

func (m *ServiceModel) ToDomain() content.Service {
	return content.Service{
		ID:            m.ID,
		Slug:          m.Slug,
		Title:         m.Title,
		TitleEN:       m.TitleEN,
		Description:   m.Description,
		DescriptionEN: m.DescriptionEN,
		Content:       m.Content,
		ContentEN:     m.ContentEN,
		Icon:          m.Icon,
		Order:         m.Order,
	}
}
