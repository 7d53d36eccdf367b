package usecases

import (
	"context"

	"apen/internal/application/content/dto"
	"apen/internal/shared/i18n"
	"apen/internal/shared/logger"
)

// ListPostsUseCase returns localized post summaries, newest first.
type ListPostsUseCase struct {
	repo   PostRepository
	logger logger.Interface
}

func NewListPostsUseCase(repo PostRepository, logger logger.Interface) *ListPostsUseCase {
	return &ListPostsUseCase{repo: repo, logger: logger}
}

func (uc *ListPostsUseCase) Execute(ctx context.Context, lang i18n.Language, limit int) ([]dto.PostSummary, error) {
	posts, err := uc.repo.List(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list posts", "error", err)
		return nil, err
	}

	summaries := make([]dto.PostSummary, 0, len(posts))
	for _, post := range posts {
		localized := post.Localize(lang)
		summaries = append(summaries, dto.PostSummary{
			Slug:        localized.Slug,
			Title:       localized.Title,
			Excerpt:     localized.Excerpt,
			PublishedAt: localized.PublishedAt,
		})
	}
	return summaries, nil
}

// GetPostUseCase returns one localized post with its body rendered.
type GetPostUseCase struct {
	repo     PostRepository
	markdown MarkdownRenderer
	logger   logger.Interface
}

func NewGetPostUseCase(repo PostRepository, markdown MarkdownRenderer, logger logger.Interface) *GetPostUseCase {
	return &GetPostUseCase{repo: repo, markdown: markdown, logger: logger}
}

func (uc *GetPostUseCase) Execute(ctx context.Context, slug string, lang i18n.Language) (*dto.PostDetail, error) {
	post, err := uc.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	localized := post.Localize(lang)

	bodyHTML, err := uc.markdown.ToHTMLSanitized(localized.Body)
	if err != nil {
		// A body that fails to render should not hide the post.
		uc.logger.Warnw("failed to render post body", "slug", slug, "error", err)
		bodyHTML = ""
	}

	return &dto.PostDetail{
		Slug:        localized.Slug,
		Title:       localized.Title,
		Excerpt:     localized.Excerpt,
		BodyHTML:    bodyHTML,
		PublishedAt: localized.PublishedAt,
	}, nil
}
