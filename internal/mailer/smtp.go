package mailer

import (
	"errors"
	"time"

	gomail "gopkg.in/mail.v2"
)

type SMTPClient struct {
	fromEmail string
	dialer    *gomail.Dialer
}

// NewSMTPClient authenticates against an SMTP relay (Gmail app passwords work).
func NewSMTPClient(host string, port int, username, password, fromEmail string, timeout time.Duration) (*SMTPClient, error) {
	if username == "" || password == "" {
		return nil, errors.New("smtp credentials are required")
	}
	if fromEmail == "" {
		fromEmail = username
	}

	dialer := gomail.NewDialer(host, port, username, password)
	dialer.Timeout = timeout

	return &SMTPClient{
		fromEmail: fromEmail,
		dialer:    dialer,
	}, nil
}

func (c *SMTPClient) Send(templateFile, email string, data any) error {
	msg, err := c.message(templateFile, email, data)
	if err != nil {
		return err
	}
	return c.dialer.DialAndSend(msg)
}

func (c *SMTPClient) message(templateFile, email string, data any) (*gomail.Message, error) {
	rendered, err := Render(templateFile, data)
	if err != nil {
		return nil, err
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", c.fromEmail, FromName)
	message.SetHeader("To", email)
	message.SetHeader("Subject", rendered.Subject)
	message.SetBody("text/html", rendered.Body)

	return message, nil
}
