package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/zhouzirui/meeting-minutes/backend/internal/config"
)

// SMTPTransport sends through an authenticated SMTP relay.
type SMTPTransport struct {
	client *gomail.Client
	auth   gomail.SMTPAuthType
}

// NewSMTPTransport connects with implicit TLS on port 465 and opportunistic
// STARTTLS on every other port. The auth mechanism is picked from what the
// relay advertises.
func NewSMTPTransport(cfg config.MailConfig) (Transport, error) {
	auth := gomail.SMTPAuthAutoDiscover
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(auth),
		gomail.WithUsername(cfg.User),
		gomail.WithPassword(cfg.Password),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.Timeout))
	}
	if cfg.ImplicitTLS() {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &SMTPTransport{client: client, auth: auth}, nil
}

// Send builds a text/html message and delivers it in one SMTP session.
func (t *SMTPTransport) Send(ctx context.Context, env Envelope) error {
	msg := gomail.NewMsg()
	if err := msg.From(env.From); err != nil {
		return fmt.Errorf("invalid sender %q: %w", env.From, err)
	}
	if err := msg.To(env.To); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", env.To, err)
	}
	msg.Subject(env.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, env.HTML)

	if err := t.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
