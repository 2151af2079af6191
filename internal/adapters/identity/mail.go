package identity

import (
	"context"
	"fmt"

	"hrdesk/internal/core/domain"

	"gopkg.in/gomail.v2"
)

// Email is a rendered one-time code message
type Email struct {
	Subject string
	Text    string
	HTML    string
}

// Compose renders the email for a code delivery
func Compose(msg Message) Email {
	var subject, action string
	switch msg.Purpose {
	case domain.OTPPurposeRegister:
		subject = "Activate your HR dashboard account"
		action = "finish activating your account"
	case domain.OTPPurposeReset:
		subject = "Reset your HR dashboard password"
		action = "reset your password"
	default:
		subject = "Your verification code"
		action = "continue"
	}

	minutes := int(msg.ExpiresIn.Minutes())
	return Email{
		Subject: subject,
		Text:    fmt.Sprintf("Use the code below to %s:\n\n%s\n\nThis code expires in %d minutes.", action, msg.Code, minutes),
		HTML: fmt.Sprintf(
			`<p>Use the code below to %s:</p><p><strong>%s</strong></p><p>This code expires in %d minutes.</p>`,
			action, msg.Code, minutes,
		),
	}
}

// SMTPSender emails one-time codes through an SMTP relay
type SMTPSender struct {
	dialer    *gomail.Dialer
	fromEmail string
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(host string, port int, username, password, fromEmail string) *SMTPSender {
	return &SMTPSender{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
	}
}

// Message builds the gomail message for a delivery
func (s *SMTPSender) Message(msg Message) *gomail.Message {
	mail := Compose(msg)
	m := gomail.NewMessage()
	m.SetHeader("From", s.fromEmail)
	m.SetHeader("To", msg.Identifier)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/plain", mail.Text)
	m.AddAlternative("text/html", mail.HTML)
	return m
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(s.Message(msg)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
