// Package email renders notification messages and delivers them over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/config"
)

// dialer is the part of gomail.Dialer the mailer needs.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	fromAddress string
	fromName    string
	dialer      dialer
}

func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	return &SMTPMailer{
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// Send delivers one message with a plain text part and an HTML alternative.
func (s *SMTPMailer) Send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
