package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apen/internal/shared/errors"
	"apen/internal/shared/i18n"
)

func validArgs() [8]string {
	return [8]string{"Juan Pérez", "juan@example.com", "555-1234", "Auditoría", "2026-03-10", "14:00", "", "es"}
}

func build(args [8]string) (*Submission, error) {
	return NewSubmission(args[0], args[1], args[2], args[3], args[4], args[5], args[6], args[7])
}

func TestNewSubmission_Valid(t *testing.T) {
	s, err := build(validArgs())

	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Juan Pérez", s.Name())
	assert.Equal(t, "juan@example.com", s.Email())
	assert.Equal(t, "555-1234", s.Phone())
	assert.Equal(t, "Auditoría", s.Service())
	assert.Equal(t, "2026-03-10", s.Date())
	assert.Equal(t, "14:00", s.Time())
	assert.Empty(t, s.Message())
	assert.Equal(t, i18n.LanguageES, s.Language())
	assert.WithinDuration(t, time.Now(), s.CreatedAt(), 2*time.Second)
}

func TestNewSubmission_OptionalMessage(t *testing.T) {
	args := validArgs()
	args[6] = "Necesito ayuda con una auditoría externa."

	s, err := build(args)

	require.NoError(t, err)
	assert.Equal(t, "Necesito ayuda con una auditoría externa.", s.Message())
}

func TestNewSubmission_MissingRequiredFields(t *testing.T) {
	fields := []string{"name", "email", "phone", "service", "date", "time"}

	for i, field := range fields {
		t.Run(field, func(t *testing.T) {
			args := validArgs()
			args[i] = ""

			s, err := build(args)

			require.Error(t, err)
			assert.Nil(t, s)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, "Por favor complete todos los campos requeridos.", appErr.Message)
		})
	}
}

func TestNewSubmission_MissingFieldMessageIsLocalized(t *testing.T) {
	args := validArgs()
	args[0] = "   "
	args[7] = "en"

	_, err := build(args)

	require.Error(t, err)
	assert.Equal(t, "Please fill in all required fields.", errors.GetAppError(err).Message)
}

func TestNewSubmission_InvalidEmail(t *testing.T) {
	invalid := []string{"not-an-email", "missing@tld", "@nodomain.com", "spaces in@mail.com", "two@@example.com"}

	for _, email := range invalid {
		t.Run(email, func(t *testing.T) {
			args := validArgs()
			args[1] = email

			s, err := build(args)

			require.Error(t, err)
			assert.Nil(t, s)
			assert.Equal(t, "Por favor ingrese un correo electrónico válido.", errors.GetAppError(err).Message)
		})
	}
}

func TestNewSubmission_InvalidEmailMessageIsLocalized(t *testing.T) {
	args := validArgs()
	args[1] = "not-an-email"
	args[7] = "en"

	_, err := build(args)

	require.Error(t, err)
	assert.Equal(t, "Please enter a valid email address.", errors.GetAppError(err).Message)
}

func TestNewSubmission_UnknownLanguageDefaultsToSpanish(t *testing.T) {
	args := validArgs()
	args[7] = "fr"

	s, err := build(args)

	require.NoError(t, err)
	assert.Equal(t, i18n.LanguageES, s.Language())
}

func TestSubmission_FormattedValues(t *testing.T) {
	s, err := build(validArgs())
	require.NoError(t, err)

	assert.Equal(t, "10 de marzo, 2026", s.FormattedDate())
	assert.Equal(t, "02:00 PM", s.FormattedTime())
}

func TestSubmission_FormattedValuesEnglish(t *testing.T) {
	args := validArgs()
	args[7] = "en"

	s, err := build(args)
	require.NoError(t, err)

	assert.Equal(t, "March 10, 2026", s.FormattedDate())
}
