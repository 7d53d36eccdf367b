package usecases

import (
	"context"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apen/internal/domain/content"
	"apen/internal/shared/errors"
	"apen/internal/shared/i18n"
	"apen/internal/shared/logger"
	"apen/internal/shared/services/markdown"
)

type fakePostRepo struct {
	posts   []content.Post
	listErr error
}

func (f *fakePostRepo) List(ctx context.Context, limit int) ([]content.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit > 0 && limit < len(f.posts) {
		return f.posts[:limit], nil
	}
	return f.posts, nil
}

func (f *fakePostRepo) FindBySlug(ctx context.Context, slug string) (*content.Post, error) {
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			return &f.posts[i], nil
		}
	}
	return nil, errors.NewNotFoundError("post not found", slug)
}

type fakeServiceRepo struct {
	services []content.Service
}

func (f *fakeServiceRepo) List(ctx context.Context) ([]content.Service, error) {
	return f.services, nil
}

func (f *fakeServiceRepo) FindBySlug(ctx context.Context, slug string) (*content.Service, error) {
	for i := range f.services {
		if f.services[i].Slug == slug {
			return &f.services[i], nil
		}
	}
	return nil, errors.NewNotFoundError("service not found", slug)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

func TestListPosts_Localized(t *testing.T) {
	repo := &fakePostRepo{posts: []content.Post{
		{Slug: "uno", Title: "Uno", TitleEN: "One"},
		{Slug: "dos", Title: "Dos"},
	}}
	uc := NewListPostsUseCase(repo, testLogger())

	summaries, err := uc.Execute(context.Background(), i18n.LanguageEN, 0)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "One", summaries[0].Title)
	// Missing translation falls back to Spanish.
	assert.Equal(t, "Dos", summaries[1].Title)
}

func TestListPosts_PropagatesRepositoryError(t *testing.T) {
	repo := &fakePostRepo{listErr: stderrors.New("db down")}
	uc := NewListPostsUseCase(repo, testLogger())

	summaries, err := uc.Execute(context.Background(), i18n.LanguageES, 0)

	require.Error(t, err)
	assert.Nil(t, summaries)
}

func TestGetPost_RendersBody(t *testing.T) {
	repo := &fakePostRepo{posts: []content.Post{
		{Slug: "uno", Title: "Uno", Body: "# Hola\n\nTexto."},
	}}
	uc := NewGetPostUseCase(repo, markdown.NewService(), testLogger())

	detail, err := uc.Execute(context.Background(), "uno", i18n.LanguageES)

	require.NoError(t, err)
	assert.Equal(t, "Uno", detail.Title)
	assert.Contains(t, detail.BodyHTML, "<h1")
	assert.Contains(t, detail.BodyHTML, "Hola")
}

func TestGetPost_NotFound(t *testing.T) {
	uc := NewGetPostUseCase(&fakePostRepo{}, markdown.NewService(), testLogger())

	detail, err := uc.Execute(context.Background(), "missing", i18n.LanguageES)

	require.Error(t, err)
	assert.Nil(t, detail)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListServices_Localized(t *testing.T) {
	repo := &fakeServiceRepo{services: []content.Service{
		{Slug: "auditoria", Title: "Auditoría", TitleEN: "Audit", Order: 1},
		{Slug: "asesoria", Title: "Asesoría", Order: 2},
	}}
	uc := NewListServicesUseCase(repo, testLogger())

	summaries, err := uc.Execute(context.Background(), i18n.LanguageEN)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Audit", summaries[0].Title)
	assert.Equal(t, "Asesoría", summaries[1].Title)
}

func TestGetService_RendersContent(t *testing.T) {
	repo := &fakeServiceRepo{services: []content.Service{
		{Slug: "auditoria", Title: "Auditoría", Content: "Auditoría **externa**."},
	}}
	uc := NewGetServiceUseCase(repo, markdown.NewService(), testLogger())

	detail, err := uc.Execute(context.Background(), "auditoria", i18n.LanguageES)

	require.NoError(t, err)
	assert.Contains(t, detail.ContentHTML, "<strong>externa</strong>")
}

func TestGetService_NotFound(t *testing.T) {
	uc := NewGetServiceUseCase(&fakeServiceRepo{}, markdown.NewService(), testLogger())

	detail, err := uc.Execute(context.Background(), "missing", i18n.LanguageES)

	require.Error(t, err)
	assert.Nil(t, detail)
	assert.True(t, errors.IsNotFoundError(err))
}
