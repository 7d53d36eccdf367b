// Package email owns the SMTP transport and the rendering of the two
// transactional documents sent for every contact-form submission.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"apen/internal/domain/contact"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPMailer dispatches rendered messages over a fixed SMTP endpoint.
// Port 465 means implicit TLS on connect; gomail selects that automatically.
type SMTPMailer struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPMailer{
		config: config,
		dialer: dialer,
	}
}

// Verify opens and authenticates a connection, then closes it. A rejected
// credential or unreachable host surfaces here, before anything is sent.
func (m *SMTPMailer) Verify() error {
	conn, err := m.dialer.Dial()
	if err != nil {
		return fmt.Errorf("smtp verify failed: %w", err)
	}
	return conn.Close()
}

// Send transmits one outbound message.
func (m *SMTPMailer) Send(msg contact.OutboundMessage) error {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", msg.FromAddress, msg.FromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetBody("text/html", msg.HTML)

	if err := m.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}

	return nil
}
