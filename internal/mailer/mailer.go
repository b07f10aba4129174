package mailer

import (
	"fmt"
	"strings"
	"time"
)

// ConfirmationLine is one purchased item as it appears in the email.
type ConfirmationLine struct {
	Name       string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

// Confirmation is everything the order confirmation email needs.
type Confirmation struct {
	To                string
	CustomerName      string
	OrderNumber       string
	Lines             []ConfirmationLine
	TotalAmount       float64
	PaymentMethod     string
	OrderDate         string
	EstimatedDelivery string
}

// Mailer sends transactional email. Implementations must be safe to call
// from a goroutine after the triggering transaction has committed; a send
// failure is the caller's to log, never to propagate.
type Mailer interface {
	SendOrderConfirmation(conf Confirmation) error
}

// EstimatedDelivery gives the ETA shown in the confirmation: two days out
// for express shipping, four otherwise.
func EstimatedDelivery(deliveryMethod string, from time.Time) string {
	days := 4
	if deliveryMethod == "express" {
		days = 2
	}
	return from.AddDate(0, 0, days).Format("Jan 02, 2006")
}

// renderBody builds the shared plain-text body used by every implementation.
func renderBody(brandName, supportEmail string, conf Confirmation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", conf.CustomerName)
	fmt.Fprintf(&b, "Thank you for shopping with %s! Your order %s has been received.\n\n", brandName, conf.OrderNumber)
	for _, line := range conf.Lines {
		fmt.Fprintf(&b, "  %s x%d - %.2f\n", line.Name, line.Quantity, line.TotalPrice)
	}
	fmt.Fprintf(&b, "\nOrder total: %.2f\n", conf.TotalAmount)
	fmt.Fprintf(&b, "Payment method: %s\n", conf.PaymentMethod)
	if conf.EstimatedDelivery != "" {
		fmt.Fprintf(&b, "Estimated delivery: %s\n", conf.EstimatedDelivery)
	}
	fmt.Fprintf(&b, "\nQuestions? Reach us at %s.\n", supportEmail)
	return b.String()
}

// Nop is a Mailer that does nothing. Used in tests and when no API key is
// configured.
type Nop struct{}

func (Nop) SendOrderConfirmation(Confirmation) error { return nil }
