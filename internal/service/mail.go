package service

import (
	"context"
	"fmt"

	"github.com/osa911/agencysite/internal/config"
	"github.com/osa911/agencysite/internal/logging"
)

// Email is one outbound message.
type Email struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers composed messages through an email provider.
type Mailer interface {
	// Configured reports whether credentials and a destination mailbox are present.
	Configured() bool
	Send(ctx context.Context, msg *Email) error
}

// NewMailer returns the mailer selected by cfg.Provider.
func NewMailer(cfg config.MailConfig, logger *logging.Logger) (Mailer, error) {
	switch cfg.Provider {
	case config.MailProviderResend:
		return NewResendService(cfg, logger), nil
	case config.MailProviderSMTP:
		return NewSMTPService(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}
