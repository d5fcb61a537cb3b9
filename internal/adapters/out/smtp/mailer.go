// Package smtp sends rendered notification messages over SMTP using
// wneessen/go-mail. One client is configured at startup and reused; each
// send dials, transmits, and closes within the caller's context.
package smtp

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Tilak2001/Anandicecream/internal/notifications"

	"github.com/wneessen/go-mail"
)

// Config holds the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer implements notifications.MailSender over SMTP.
type Mailer struct {
	client *mail.Client
	from   string
}

// NewMailer creates a mailer from transport settings.
// Uses SMTP PLAIN auth with opportunistic TLS, which covers the usual
// provider setups on ports 587 and 465.
func NewMailer(cfg Config) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure smtp client: %w", err)
	}

	return &Mailer{client: client, from: cfg.From}, nil
}

// Send delivers one message, honoring the context deadline.
func (m *Mailer) Send(ctx context.Context, msg notifications.Message) error {
	mailMsg := mail.NewMsg()
	if err := mailMsg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := mailMsg.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	mailMsg.Subject(msg.Subject)
	mailMsg.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	for _, attachment := range msg.Attachments {
		err := mailMsg.AttachReader(attachment.Filename,
			bytes.NewReader(attachment.Content),
			mail.WithFileContentType(mail.ContentType(attachment.ContentType)))
		if err != nil {
			return fmt.Errorf("failed to attach %s: %w", attachment.Filename, err)
		}
	}

	if err := m.client.DialAndSendWithContext(ctx, mailMsg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}

	return nil
}
