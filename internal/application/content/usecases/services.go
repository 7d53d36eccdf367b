package usecases

import (
	"context"

	"apen/internal/application/content/dto"
	"apen/internal/shared/i18n"
	"apen/internal/shared/logger"
)

// ListServicesUseCase returns the firm's services in display order.
type ListServicesUseCase struct {
	repo   ServiceRepository
	logger logger.Interface
}

func NewListServicesUseCase(repo ServiceRepository, logger logger.Interface) *ListServicesUseCase {
	return &ListServicesUseCase{repo: repo, logger: logger}
}

func (uc *ListServicesUseCase) Execute(ctx context.Context, lang i18n.Language) ([]dto.ServiceSummary, error) {
	services, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list services", "error", err)
		return nil, err
	}

	summaries := make([]dto.ServiceSummary, 0, len(services))
	for _, service := range services {
		localized := service.Localize(lang)
		summaries = append(summaries, dto.ServiceSummary{
			Slug:        localized.Slug,
			Title:       localized.Title,
			Description: localized.Description,
			Icon:        localized.Icon,
			Order:       localized.Order,
		})
	}
	return summaries, nil
}

// GetServiceUseCase returns one localized service page.
type GetServiceUseCase struct {
	repo     ServiceRepository
	markdown MarkdownRenderer
	logger   logger.Interface
}

func NewGetServiceUseCase(repo ServiceRepository, markdown MarkdownRenderer, logger logger.Interface) *GetServiceUseCase {
	return &GetServiceUseCase{repo: repo, markdown: markdown, logger: logger}
}

func (uc *GetServiceUseCase) Execute(ctx context.Context, slug string, lang i18n.Language) (*dto.ServiceDetail, error) {
	service, err := uc.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	localized := service.Localize(lang)

	contentHTML, err := uc.markdown.ToHTMLSanitized(localized.Content)
	if err != nil {
		uc.logger.Warnw("failed to render service content", "slug", slug, "error", err)
		contentHTML = ""
	}

	return &dto.ServiceDetail{
		Slug:        localized.Slug,
		Title:       localized.Title,
		Description: localized.Description,
		ContentHTML: contentHTML,
		Icon:        localized.Icon,
	}, nil
}
