package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"badum_backend/internal/config"
)

// SMTPProvider sends mail through a plain SMTP relay.
type SMTPProvider struct {
	dialer    *gomail.Dialer
	from      string
	publicURL string
}

func NewSMTPProvider(cfg config.SMTPConfig, publicURL string) *SMTPProvider {
	return &SMTPProvider{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:      cfg.From,
		publicURL: publicURL,
	}
}

func (p *SMTPProvider) SendVerificationEmail(_ context.Context, to, name, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", p.publicURL, token)

	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Confirm your email")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Hi %s,</p><p>Confirm your email by following <a href=%q>this link</a>.</p>",
		name, link,
	))

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}
