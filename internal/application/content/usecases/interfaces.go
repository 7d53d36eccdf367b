package usecases

import (
	"context"

	"apen/internal/domain/content"
)

type PostRepository interface {
	List(ctx context.Context, limit int) ([]content.Post, error)
	FindBySlug(ctx context.Context, slug string) (*content.Post, error)
}

type ServiceRepository interface {
	List(ctx context.Context) ([]content.Service, error)
	FindBySlug(ctx context.Context, slug string) (*content.Service, error)
}

// MarkdownRenderer converts editorial Markdown to sanitized HTML.
type MarkdownRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}
