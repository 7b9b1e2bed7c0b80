package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"github.com/jordan-wright/email"

	"github.com/osa911/agencysite/internal/config"
	"github.com/osa911/agencysite/internal/logging"
)

// sendFunc hands a built message to the relay at addr. Tests swap it to capture outgoing mail.
type sendFunc func(ctx context.Context, e *email.Email, addr string, auth smtp.Auth) error

// SMTPService relays messages through an SMTP server
type SMTPService struct {
	host     string
	port     int
	username string
	password string
	to       string
	timeout  time.Duration
	logger   *logging.Logger
	send     sendFunc
}

// NewSMTPService creates a new SMTP mailer
func NewSMTPService(cfg config.MailConfig, logger *logging.Logger) *SMTPService {
	s := &SMTPService{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		to:       cfg.To,
		timeout:  cfg.Timeout,
		logger:   logger,
	}
	s.send = s.relay
	return s
}

func (s *SMTPService) Configured() bool {
	return s.host != "" && s.to != ""
}

// Send delivers msg over SMTP. The whole exchange, dial included, must finish
// within the mail timeout and before ctx is done.
func (s *SMTPService) Send(ctx context.Context, msg *Email) error {
	const op = "SMTP.Send"

	if !s.Configured() {
		return ErrMailNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	to := msg.To
	if len(to) == 0 {
		to = []string{s.to}
	}

	e := &email.Email{
		To:      to,
		From:    msg.From,
		Subject: msg.Subject,
		Text:    []byte(msg.Text),
		HTML:    []byte(msg.HTML),
		Headers: textproto.MIMEHeader{},
	}
	if msg.ReplyTo != "" {
		e.ReplyTo = []string{msg.ReplyTo}
	}

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	s.logger.Debug("%s: relaying message via %s", op, addr)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.send(ctx, e, addr, auth); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// relay runs the same exchange as (*email.Email).Send over a connection
// whose deadline follows ctx.
func (s *SMTPService) relay(ctx context.Context, e *email.Email, addr string, auth smtp.Auth) error {
	from, err := mail.ParseAddress(e.From)
	if err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	recipients := make([]string, 0, len(e.To)+len(e.Cc)+len(e.Bcc))
	for _, list := range [][]string{e.To, e.Cc, e.Bcc} {
		for _, rcpt := range list {
			parsed, err := mail.ParseAddress(rcpt)
			if err != nil {
				return fmt.Errorf("invalid recipient %q: %w", rcpt, err)
			}
			recipients = append(recipients, parsed.Address)
		}
	}

	raw, err := e.Bytes()
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return err
		}
	}
	// Unblock any pending read or write once ctx is cancelled.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("smtp greeting: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(auth); err != nil {
				return fmt.Errorf("smtp auth: %w", err)
			}
		}
	}

	if err := c.Mail(from.Address); err != nil {
		return err
	}
	for _, rcpt := range recipients {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}
