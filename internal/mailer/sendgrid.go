package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends transactional email through SendGrid.
type SendGridMailer struct {
	apiKey       string
	fromEmail    string
	supportEmail string
	brandName    string
}

func NewSendGridMailer(apiKey, fromEmail, supportEmail, brandName string) *SendGridMailer {
	return &SendGridMailer{
		apiKey:       apiKey,
		fromEmail:    fromEmail,
		supportEmail: supportEmail,
		brandName:    brandName,
	}
}

var _ Mailer = (*SendGridMailer)(nil)

func (m *SendGridMailer) SendOrderConfirmation(conf Confirmation) error {
	if m.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if conf.To == "" {
		return fmt.Errorf("recipient address is empty")
	}

	subject := fmt.Sprintf("Order Confirmation - %s #%s", m.brandName, conf.OrderNumber)
	body := renderBody(m.brandName, m.supportEmail, conf)

	message := mail.NewSingleEmail(
		mail.NewEmail(m.brandName, m.fromEmail),
		subject,
		mail.NewEmail(conf.CustomerName, conf.To),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
