package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"apen/internal/domain/contact"
	"apen/internal/infrastructure/persistence/models"
	apperrors "apen/internal/shared/errors"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.SubmissionModel{},
		&models.PostModel{},
		&models.ServiceModel{},
	))
	return db
}

func TestSubmissionRepository_Save(t *testing.T) {
	db := setupDB(t)
	repo := NewSubmissionRepository(db)

	s, err := contact.NewSubmission(
		"Juan Pérez", "juan@example.com", "555-1234",
		"Auditoría", "2026-03-10", "14:00", "Hola", "es",
	)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), s))

	var row models.SubmissionModel
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "Juan Pérez", row.Name)
	assert.Equal(t, "juan@example.com", row.Email)
	assert.Equal(t, "2026-03-10", row.Date)
	assert.Equal(t, "14:00", row.Time)
	assert.Equal(t, "Hola", row.Message)
	assert.Equal(t, "es", row.Language)
}

func seedPosts(t *testing.T, db *gorm.DB) {
	t.Helper()
	day := 24 * time.Hour
	now := time.Now()
	older := now.Add(-2 * day)
	newer := now.Add(-1 * day)

	require.NoError(t, db.Create(&[]models.PostModel{
		{Slug: "older", Title: "Más antiguo", PublishedAt: &older},
		{Slug: "newer", Title: "Más reciente", TitleEN: "Newer", PublishedAt: &newer},
		{Slug: "draft", Title: "Borrador"},
	}).Error)
}

func TestPostRepository_ListNewestFirstSkipsDrafts(t *testing.T) {
	db := setupDB(t)
	seedPosts(t, db)
	repo := NewPostRepository(db)

	posts, err := repo.List(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Slug)
	assert.Equal(t, "older", posts[1].Slug)
}

func TestPostRepository_ListHonorsLimit(t *testing.T) {
	db := setupDB(t)
	seedPosts(t, db)
	repo := NewPostRepository(db)

	posts, err := repo.List(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "newer", posts[0].Slug)
}

func TestPostRepository_FindBySlug(t *testing.T) {
	db := setupDB(t)
	seedPosts(t, db)
	repo := NewPostRepository(db)

	post, err := repo.FindBySlug(context.Background(), "newer")

	require.NoError(t, err)
	assert.Equal(t, "Más reciente", post.Title)
	assert.Equal(t, "Newer", post.TitleEN)
}

func TestPostRepository_FindBySlugNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)

	post, err := repo.FindBySlug(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestServiceRepository_ListInDisplayOrder(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&[]models.ServiceModel{
		{Slug: "consultoria", Title: "Consultoría", Order: 3},
		{Slug: "auditoria", Title: "Auditoría", Order: 1},
		{Slug: "asesoria", Title: "Asesoría", Order: 2},
	}).Error)
	repo := NewServiceRepository(db)

	services, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, "auditoria", services[0].Slug)
	assert.Equal(t, "asesoria", services[1].Slug)
	assert.Equal(t, "consultoria", services[2].Slug)
}

func TestServiceRepository_FindBySlugNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewServiceRepository(db)

	service, err := repo.FindBySlug(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, service)
	assert.True(t, apperrors.IsNotFoundError(err))
}
