package usecases

import (
	"context"
	"fmt"

	"apen/internal/application/contact/dto"
	"apen/internal/domain/contact"
	"apen/internal/shared/errors"
	"apen/internal/shared/i18n"
	"apen/internal/shared/logger"
)

const (
	clientSenderName   = "Apen y Asociados"
	providerSenderName = "Formulario Web"
)

// MailSettings is the externally supplied part of the mail configuration.
// The SMTP endpoint itself is fixed; these four values must be present
// before any connection is attempted.
type MailSettings struct {
	SMTPUser        string
	SMTPPassword    string
	FromAddress     string
	ProviderAddress string
}

func (s MailSettings) missingKeys() []string {
	var missing []string
	if s.SMTPUser == "" {
		missing = append(missing, "smtp_user")
	}
	if s.SMTPPassword == "" {
		missing = append(missing, "smtp_password")
	}
	if s.FromAddress == "" {
		missing = append(missing, "from_address")
	}
	if s.ProviderAddress == "" {
		missing = append(missing, "provider_address")
	}
	return missing
}

// SubmitRequestUseCase runs one contact-form submission end to end:
// validate, persist, render, verify the transport, then send the client
// confirmation followed by the provider notification. Any failure after
// validation is terminal for the request; there are no retries.
type SubmitRequestUseCase struct {
	settings   MailSettings
	renderer   TemplateRenderer
	dispatcher MailDispatcher
	store      SubmissionStore
	logger     logger.Interface
}

func NewSubmitRequestUseCase(
	settings MailSettings,
	renderer TemplateRenderer,
	dispatcher MailDispatcher,
	store SubmissionStore,
	logger logger.Interface,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		settings:   settings,
		renderer:   renderer,
		dispatcher: dispatcher,
		store:      store,
		logger:     logger,
	}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, req dto.SubmitContactRequest) (*dto.SubmitContactResponse, error) {
	submission, err := contact.NewSubmission(
		req.Name, req.Email, req.Phone, req.Service,
		req.Date, req.Time, req.Message, req.Language,
	)
	if err != nil {
		return nil, err
	}

	msgs := i18n.ForLanguage(submission.Language())

	if missing := uc.settings.missingKeys(); len(missing) > 0 {
		// Which keys are absent stays in the logs; the caller only sees
		// the generic message.
		uc.logger.Errorw("missing smtp configuration", "keys", missing)
		return nil, errors.NewConfigError(msgs.ServerConfig)
	}

	// The audit record is best-effort: mail delivery is the contract, the
	// store exists so requests lost to mail failures can be recovered.
	if uc.store != nil {
		if err := uc.store.Save(ctx, submission); err != nil {
			uc.logger.Warnw("failed to persist submission", "error", err)
		}
	}

	clientHTML, err := uc.renderer.ClientConfirmation(submission)
	if err != nil {
		uc.logger.Errorw("failed to render client confirmation", "error", err)
		return nil, errors.NewInternalError(msgs.SendFailure, err.Error())
	}

	providerHTML, err := uc.renderer.ProviderNotification(submission)
	if err != nil {
		uc.logger.Errorw("failed to render provider notification", "error", err)
		return nil, errors.NewInternalError(msgs.SendFailure, err.Error())
	}

	if err := uc.dispatcher.Verify(); err != nil {
		uc.logger.Errorw("smtp verification failed", "error", err)
		return nil, errors.NewTransportError(msgs.SendFailure, err.Error())
	}

	clientMsg := contact.OutboundMessage{
		To:          submission.Email(),
		FromName:    clientSenderName,
		FromAddress: uc.settings.FromAddress,
		Subject:     msgs.ClientSubject,
		HTML:        clientHTML,
	}
	if err := uc.dispatcher.Send(clientMsg); err != nil {
		// Client delivery failed, so the provider copy is never attempted.
		uc.logger.Errorw("failed to send client confirmation",
			"to", submission.Email(),
			"error", err)
		return nil, errors.NewTransportError(msgs.SendFailure, err.Error())
	}
	uc.logger.Infow("client confirmation sent", "to", submission.Email())

	providerMsg := contact.OutboundMessage{
		To:          uc.settings.ProviderAddress,
		FromName:    providerSenderName,
		FromAddress: uc.settings.FromAddress,
		ReplyTo:     submission.Email(),
		Subject:     fmt.Sprintf("Nueva Solicitud: %s | %s | %s", submission.Name(), submission.Service(), submission.Date()),
		HTML:        providerHTML,
	}
	if err := uc.dispatcher.Send(providerMsg); err != nil {
		// The client already received a confirmation at this point, but the
		// request is still reported as failed.
		uc.logger.Errorw("failed to send provider notification",
			"to", uc.settings.ProviderAddress,
			"error", err)
		return nil, errors.NewTransportError(msgs.SendFailure, err.Error())
	}
	uc.logger.Infow("provider notification sent", "to", uc.settings.ProviderAddress)

	return &dto.SubmitContactResponse{Message: msgs.Success}, nil
}
