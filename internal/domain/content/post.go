// Package content models the site's editorial records: blog posts and the
// firm's service pages. Spanish is the primary language; English fields are
// optional and fall back to Spanish when empty.
package content

import (
	"time"

	"apen/internal/shared/i18n"
)

// Post is one bilingual blog entry. Body holds Markdown.
type Post struct {
	ID          uint
	Slug        string
	Title       string
	TitleEN     string
	Excerpt     string
	ExcerptEN   string
	Body        string
	BodyEN      string
	PublishedAt *time.Time
}

// LocalizedPost is the single-language view of a post.
type LocalizedPost struct {
	Slug        string
	Title       string
	Excerpt     string
	Body        string
	PublishedAt *time.Time
}

// Localize selects the fields for one language, falling back to Spanish
// for any missing English translation.
func (p Post) Localize(lang i18n.Language) LocalizedPost {
	return LocalizedPost{
		Slug:        p.Slug,
		Title:       pick(lang, p.Title, p.TitleEN),
		Excerpt:     pick(lang, p.Excerpt, p.ExcerptEN),
		Body:        pick(lang, p.Body, p.BodyEN),
		PublishedAt: p.PublishedAt,
	}
}

func pick(lang i18n.Language, es, en string) string {
	if lang == i18n.LanguageEN && en != "" {
		return en
	}
	return es
}
