package i18n

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, LanguageEN, Parse("en"))
	assert.Equal(t, LanguageES, Parse("es"))
	assert.Equal(t, LanguageES, Parse(""))
	assert.Equal(t, LanguageES, Parse("de"))
}

func TestForLanguage(t *testing.T) {
	assert.Equal(t, "Please fill in all required fields.", ForLanguage(LanguageEN).MissingFields)
	assert.Equal(t, "Por favor complete todos los campos requeridos.", ForLanguage(LanguageES).MissingFields)

	// Unknown tags fall back to the Spanish table.
	assert.Equal(t, messagesES, ForLanguage(Language("fr")))
}

// Both tables must be fully authored; an empty string means a missing
// translation.
func TestMessages_NoEmptyStrings(t *testing.T) {
	for _, msgs := range []Messages{messagesES, messagesEN} {
		v := reflect.ValueOf(msgs)
		for i := 0; i < v.NumField(); i++ {
			assert.NotEmpty(t, v.Field(i).String(), "field %s", v.Type().Field(i).Name)
		}
	}
}
