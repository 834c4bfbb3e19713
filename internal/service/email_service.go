package service

import (
	"fmt"
	"net/smtp"

	"elearning-service/internal/config"
)

type EmailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Configured reports whether SMTP credentials are present. Callers check
// this before attempting a send so misconfiguration fails fast.
func (e *EmailService) Configured() bool {
	return e.cfg.Username != "" && e.cfg.Password != ""
}

func (e *EmailService) Send(to, subject, body string) error {
	message := fmt.Appendf(nil, "To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", to, subject, body)

	auth := smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.Host)
	addr := e.cfg.Host + ":" + e.cfg.Port

	return smtp.SendMail(addr, auth, e.cfg.Username, []string{to}, message)
}
