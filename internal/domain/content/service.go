package content

import "apen/internal/shared/i18n"

// Service is one of the firm's offerings (audit, advisory, consulting,
// human capital, special engagements). Content holds Markdown; Order
// controls display position.
type Service struct {
	ID            uint
	Slug          string
	Title         string
	TitleEN       string
	Description   string
	DescriptionEN string
	Content       string
	ContentEN     string
	Icon          string
	Order         int
}

// LocalizedService is the single-language view of a service.
type LocalizedService struct {
	Slug        string
	Title       string
	Description string
	Content     string
	Icon        string
	Order       int
}

// Localize selects the fields for one language with Spanish fallback.
func (s Service) Localize(lang i18n.Language) LocalizedService {
	return LocalizedService{
		Slug:        s.Slug,
		Title:       pick(lang, s.Title, s.TitleEN),
		Description: pick(lang, s.Description, s.DescriptionEN),
		Content:     pick(lang, s.Content, s.ContentEN),
		Icon:        s.Icon,
		Order:       s.Order,
	}
}
