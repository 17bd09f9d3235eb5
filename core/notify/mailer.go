package notify

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

const subject = "Unmatched SKUs found in storefront catalog"

const bodyHeader = "The following SKUs were found in the storefront catalog but not in your supplier inventory:"

// Mailer emails the unmatched-SKU report to the operator.
type Mailer struct {
	cfg  Config
	send func(*gomail.Message) error
}

// NewMailer creates a mailer for the configured SMTP account.
func NewMailer(cfg Config) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{
		cfg: cfg,
		send: func(msg *gomail.Message) error {
			return dialer.DialAndSend(msg)
		},
	}
}

// Notify sends the unmatched-SKU list. It is a no-op when the list is
// empty. The ctx parameter is accepted for interface symmetry; SMTP
// delivery is bounded by the dialer's own timeouts.
func (m *Mailer) Notify(ctx context.Context, skus []string) error {
	if len(skus) == 0 {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.Username, m.cfg.FromName)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", Body(skus))

	if err := m.send(msg); err != nil {
		return fmt.Errorf("failed to send unmatched SKU email: %w", err)
	}
	return nil
}

// Body renders the plain-text report, one SKU per line.
func Body(skus []string) string {
	return bodyHeader + "\n\n" + strings.Join(skus, "\n")
}
