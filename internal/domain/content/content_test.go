package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apen/internal/shared/i18n"
)

func TestPostLocalize_English(t *testing.T) {
	p := Post{
		Slug:      "auditoria-2026",
		Title:     "Novedades de auditoría",
		TitleEN:   "Audit news",
		Excerpt:   "Resumen",
		ExcerptEN: "Summary",
	}

	lp := p.Localize(i18n.LanguageEN)

	assert.Equal(t, "Audit news", lp.Title)
	assert.Equal(t, "Summary", lp.Excerpt)
	assert.Equal(t, "auditoria-2026", lp.Slug)
}

func TestPostLocalize_EnglishFallsBackToSpanish(t *testing.T) {
	p := Post{
		Slug:    "solo-espanol",
		Title:   "Sólo en español",
		Excerpt: "Sin traducción",
	}

	lp := p.Localize(i18n.LanguageEN)

	assert.Equal(t, "Sólo en español", lp.Title)
	assert.Equal(t, "Sin traducción", lp.Excerpt)
}

func TestPostLocalize_SpanishIgnoresEnglishFields(t *testing.T) {
	p := Post{Title: "Título", TitleEN: "Title"}

	lp := p.Localize(i18n.LanguageES)

	assert.Equal(t, "Título", lp.Title)
}

func TestServiceLocalize(t *testing.T) {
	s := Service{
		Slug:          "auditoria",
		Title:         "Auditoría",
		TitleEN:       "Audit",
		Description:   "Auditoría externa e interna",
		DescriptionEN: "",
		Order:         1,
	}

	en := s.Localize(i18n.LanguageEN)
	assert.Equal(t, "Audit", en.Title)
	assert.Equal(t, "Auditoría externa e interna", en.Description, "empty translation falls back")

	es := s.Localize(i18n.LanguageES)
	assert.Equal(t, "Auditoría", es.Title)
	assert.Equal(t, 1, es.Order)
}
