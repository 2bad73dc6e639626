// Package mail wraps the transactional-email provider.
package mail

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Mailer interface {
	Send(to, subject, html string) error
}

const (
	fromName    = "tshirtshop"
	fromAddress = "challenge@tshirtshop.test"
)

type SendGridMailer struct{ apiKey string }

func NewSendGridMailer(apiKey string) *SendGridMailer { return &SendGridMailer{apiKey: apiKey} }

func (m *SendGridMailer) Send(to, subject, html string) error {
	msg := sgmail.NewSingleEmail(
		sgmail.NewEmail(fromName, fromAddress),
		subject,
		sgmail.NewEmail("", to),
		"",
		html,
	)
	resp, err := sendgrid.NewSendClient(m.apiKey).Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d", resp.StatusCode)
	}
	return nil
}
