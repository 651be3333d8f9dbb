package notification

import (
	"fmt"
	"net/smtp"

	"slotwise/config"
)

// EmailSender delivers a single plain-text email.
type EmailSender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends email through the configured SMTP relay.
type SMTPSender struct {
	addr string
	from string
}

// NewSMTPSender builds a sender from app config.
func NewSMTPSender() *SMTPSender {
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", config.AppConfig.SMTPHost, config.AppConfig.SMTPPort),
		from: config.AppConfig.EmailFrom,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		s.from, to, subject, body,
	)
	return smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}
