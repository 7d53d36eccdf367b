// Package i18n holds the two statically authored language surfaces of the
// site (Spanish primary, English secondary): the language tag, the
// user-facing message tables and the display formatting helpers.
package i18n

// Language is the two-valued language tag carried by every submission.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// Parse normalizes a raw tag. Anything that is not "en" is treated as
// Spanish, the site default.
func Parse(tag string) Language {
	if tag == string(LanguageEN) {
		return LanguageEN
	}
	return LanguageES
}

func (l Language) IsSpanish() bool {
	return l != LanguageEN
}

func (l Language) String() string {
	return string(l)
}
