package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jordan-wright/email"

	"vehicle-lookup-api/internal/model"
)

// SMTPSender delivers inquiries through an SMTP relay
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       []string
	now      func() time.Time

	allowNoAuth bool
	logger      *slog.Logger
}

// SMTPOption configures an SMTPSender
type SMTPOption func(*SMTPSender)

// WithUnauthenticatedFallback retries without credentials when the relay
// does not advertise AUTH. Off by default.
func WithUnauthenticatedFallback() SMTPOption {
	return func(s *SMTPSender) {
		s.allowNoAuth = true
	}
}

// WithSMTPLogger sets the logger used for delivery warnings
func WithSMTPLogger(logger *slog.Logger) SMTPOption {
	return func(s *SMTPSender) {
		s.logger = logger
	}
}

// NewSMTPSender creates an SMTP sender. Authentication is skipped when username is empty.
func NewSMTPSender(host string, port int, username, password, from string, to []string, opts ...SMTPOption) *SMTPSender {
	s := &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send e-mails the inquiry and returns the generated Message-Id
func (s *SMTPSender) Send(ctx context.Context, inq model.Inquiry, v model.Vehicle) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	msg, err := Compose(inq, v, s.now())
	if err != nil {
		return "", err
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)

	mail := email.NewEmail()
	mail.From = s.from
	mail.To = s.to
	mail.Subject = msg.Subject
	mail.HTML = []byte(msg.HTML)
	mail.Headers.Set("Message-Id", id)
	if inq.CustomerEmail != "" {
		mail.ReplyTo = []string{inq.CustomerEmail}
	}

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	err = mail.Send(addr, auth)
	if err != nil && auth != nil && s.allowNoAuth && strings.Contains(err.Error(), "server doesn't support AUTH") {
		s.logger.Warn("smtp relay does not support AUTH, sending without credentials", "addr", addr)
		err = mail.Send(addr, nil)
	}
	if err != nil {
		return "", fmt.Errorf("smtp send via %s: %w", addr, err)
	}

	return strings.Trim(id, "<>"), nil
}
