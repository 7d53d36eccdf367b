// Package contact models one appointment request submitted through the
// public contact form. The constructor is the only validation gate: a
// Submission that exists is safe to hand to the mail pipeline.
package contact

import (
	"regexp"
	"strings"
	"time"

	"apen/internal/shared/errors"
	"apen/internal/shared/i18n"
)

// Deliberately loose: one local part, one @, one dotted domain. Real
// deliverability is decided by the SMTP conversation, not the syntax check.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is a validated contact-form request. All fields except the
// optional message are guaranteed non-empty.
type Submission struct {
	name      string
	email     string
	phone     string
	service   string
	date      string
	time      string
	message   string
	language  i18n.Language
	createdAt time.Time
}

// NewSubmission validates the raw form values and builds a Submission.
// Error messages are localized to the submitter's language; the language
// tag itself defaults to Spanish when absent or unknown.
func NewSubmission(name, email, phone, service, date, timeStr, message, language string) (*Submission, error) {
	lang := i18n.Parse(language)
	msgs := i18n.ForLanguage(lang)

	required := []string{name, email, phone, service, date, timeStr}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return nil, errors.NewValidationError(msgs.MissingFields)
		}
	}

	if !emailPattern.MatchString(email) {
		return nil, errors.NewValidationError(msgs.InvalidEmail)
	}

	return &Submission{
		name:      name,
		email:     email,
		phone:     phone,
		service:   service,
		date:      date,
		time:      timeStr,
		message:   message,
		language:  lang,
		createdAt: time.Now(),
	}, nil
}

func (s *Submission) Name() string            { return s.name }
func (s *Submission) Email() string           { return s.email }
func (s *Submission) Phone() string           { return s.phone }
func (s *Submission) Service() string         { return s.service }
func (s *Submission) Date() string            { return s.date }
func (s *Submission) Time() string            { return s.time }
func (s *Submission) Message() string         { return s.message }
func (s *Submission) Language() i18n.Language { return s.language }
func (s *Submission) CreatedAt() time.Time    { return s.createdAt }

// FormattedDate returns the date localized for the submitter.
func (s *Submission) FormattedDate() string {
	return i18n.FormatDate(s.date, s.language)
}

// FormattedTime returns the time in 12-hour display format.
func (s *Submission) FormattedTime() string {
	return i18n.FormatTime(s.time)
}
