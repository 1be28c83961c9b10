package email

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/polyforma/qualitrack/internal/domain/notification"
	"github.com/polyforma/qualitrack/internal/shared/locale"
	"github.com/polyforma/qualitrack/internal/shared/services/markdown"
)

var ErrNoRecipientAddress = errors.New("recipient has no email address")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // links in message bodies point here
}

// Sender is the part of gomail.Dialer the notifier uses.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier delivers alert and certificate notifications as multipart
// emails. Bodies are written in markdown and rendered to sanitized HTML.
type SMTPNotifier struct {
	config   SMTPConfig
	sender   Sender
	markdown markdown.Renderer
	format   *locale.Formatter
}

func NewSMTPNotifier(config SMTPConfig, renderer markdown.Renderer, format *locale.Formatter) *SMTPNotifier {
	return &SMTPNotifier{
		config:   config,
		sender:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		markdown: renderer,
		format:   format,
	}
}

// WithSender swaps the SMTP dialer, e.g. for a recording fake in tests.
func (s *SMTPNotifier) WithSender(sender Sender) *SMTPNotifier {
	s.sender = sender
	return s
}

func (s *SMTPNotifier) NotifyAlert(ctx context.Context, to notification.Recipient, summary notification.AlertSummary) error {
	subject := fmt.Sprintf("Alerta de merma: %s lote %s (%s)",
		summary.ProductName, summary.LotNumber, s.format.Percent(summary.ActualValue))
	body := alertBody(s.format, to, summary, s.config.BaseURL)
	return s.send(ctx, to, subject, body)
}

func (s *SMTPNotifier) NotifyCertificateReady(ctx context.Context, to notification.Recipient, summary notification.CertificateSummary) error {
	subject := fmt.Sprintf("Certificado %s aprobado", summary.Code)
	body := certificateBody(s.format, to, summary, s.config.BaseURL)
	return s.send(ctx, to, subject, body)
}

func (s *SMTPNotifier) send(ctx context.Context, to notification.Recipient, subject, markdownBody string) error {
	if to.Email == "" {
		return ErrNoRecipientAddress
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("notification abandoned: %w", err)
	}

	htmlBody, err := s.markdown.ToHTMLSanitized(markdownBody)
	if err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetAddressHeader("To", to.Email, to.Name)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", markdownBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
