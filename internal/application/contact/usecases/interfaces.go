package usecases

import (
	"context"

	"apen/internal/domain/contact"
)

// TemplateRenderer builds the two HTML documents for a validated submission.
type TemplateRenderer interface {
	ClientConfirmation(s *contact.Submission) (string, error)
	ProviderNotification(s *contact.Submission) (string, error)
}

// MailDispatcher owns the SMTP transport. Verify authenticates against the
// endpoint without sending; Send transmits one rendered message.
type MailDispatcher interface {
	Verify() error
	Send(msg contact.OutboundMessage) error
}

// SubmissionStore persists accepted submissions as an audit trail.
type SubmissionStore interface {
	Save(ctx context.Context, s *contact.Submission) error
}
