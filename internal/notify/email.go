// Package notify delivers hot-lead notifications: the API enqueues a task
// when a submission scores hot, and the worker emails the configured inbox.
package notify

import (
	"context"
	"fmt"

	"leadtracker_backend/platform/config"

	"github.com/wneessen/go-mail"
)

// Sender delivers notification emails over SMTP. When email is disabled it
// becomes a no-op so the worker can run without mail credentials.
type Sender struct {
	client      *mail.Client
	fromName    string
	fromAddress string
	toAddress   string
}

// NewSender creates an email sender from the email configuration.
func NewSender(cfg config.EmailConfig) (*Sender, error) {
	if !cfg.GetEmailEnabled() {
		return &Sender{}, nil
	}

	client, err := mail.NewClient(cfg.GetSMTPHost(),
		mail.WithPort(cfg.GetSMTPPort()),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.GetSMTPUsername()),
		mail.WithPassword(cfg.GetSMTPPassword()),
	)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}

	return &Sender{
		client:      client,
		fromName:    cfg.GetEmailFromName(),
		fromAddress: cfg.GetEmailFromAddress(),
		toAddress:   cfg.GetNotifyAddress(),
	}, nil
}

// Enabled reports whether the sender will actually deliver mail.
func (s *Sender) Enabled() bool {
	return s.client != nil && s.toAddress != ""
}

// Send delivers a plain-text notification to the configured inbox.
func (s *Sender) Send(ctx context.Context, subject, body string) error {
	if !s.Enabled() {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromAddress); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(s.toAddress); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
