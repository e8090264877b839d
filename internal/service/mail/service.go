package mail

import (
	"context"
	"log/slog"

	"github.com/zhouzirui/meeting-minutes/backend/internal/apperror"
	"github.com/zhouzirui/meeting-minutes/backend/internal/config"
)

// Envelope is a single HTML email.
type Envelope struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Transport delivers an Envelope to a mail relay.
type Transport interface {
	Send(ctx context.Context, env Envelope) error
}

// TransportFactory builds a Transport from relay settings.
type TransportFactory func(cfg config.MailConfig) (Transport, error)

// Service sends summaries by email. It keeps no record of sent mail.
type Service struct {
	cfg          config.MailConfig
	newTransport TransportFactory
	logger       *slog.Logger
}

// NewService returns a Service that builds a transport per send with factory.
func NewService(cfg config.MailConfig, factory TransportFactory, logger *slog.Logger) *Service {
	if factory == nil {
		factory = NewSMTPTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:          cfg,
		newTransport: factory,
		logger:       logger.With("component", "mail"),
	}
}

// Configured reports whether host, port, user and password are all set.
func (s *Service) Configured() bool {
	return s.cfg.Complete()
}

// Send composes the email body and hands it to the relay.
func (s *Service) Send(ctx context.Context, recipient, subject string, message *string, summaryHTML string) error {
	if !s.cfg.Complete() {
		s.logger.Error("mail relay not configured", "host_set", s.cfg.Host != "", "port_set", s.cfg.Port > 0, "user_set", s.cfg.User != "")
		return apperror.Configuration("Email configuration not complete")
	}

	transport, err := s.newTransport(s.cfg)
	if err != nil {
		return apperror.Delivery("Failed to send email", err)
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	env := Envelope{
		From:    s.cfg.Sender(),
		To:      recipient,
		Subject: subject,
		// message 为纯文本，会被转义；只有 summary 保留 HTML 标记。
		HTML: ComposeHTML(message, summaryHTML),
	}
	if err := transport.Send(ctx, env); err != nil {
		return apperror.Delivery("Failed to send email", err)
	}

	s.logger.Info("email sent", "to", recipient, "host", s.cfg.Host)
	return nil
}
