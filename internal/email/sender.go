package email

import (
	"patitas_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// Sender delivers plain text mail over SMTP.
type Sender interface {
	Configured() bool
	Send(to, subject, body string) error
}

type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Configured reports whether an SMTP host is set. Mail is skipped
// entirely when it is not.
func (s *SMTPSender) Configured() bool {
	return s.cfg.Email.SMTPHost != ""
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}
