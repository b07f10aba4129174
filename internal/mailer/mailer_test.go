package mailer

import (
	"strings"
	"testing"
	"time"
)

func TestEstimatedDelivery(t *testing.T) {
	from := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)

	if got := EstimatedDelivery("express", from); got != "Sep 01, 2026" {
		t.Fatalf("express ETA = %q", got)
	}
	if got := EstimatedDelivery("standard", from); got != "Sep 03, 2026" {
		t.Fatalf("standard ETA = %q", got)
	}
	// unknown methods ship like standard
	if got := EstimatedDelivery("pickup", from); got != "Sep 03, 2026" {
		t.Fatalf("pickup ETA = %q", got)
	}
}

func TestRenderBodyContainsOrderFacts(t *testing.T) {
	body := renderBody("Everest Beauty", "support@everestbeauty.example", Confirmation{
		CustomerName:  "Anita Shrestha",
		OrderNumber:   "EB-AB12CD34",
		TotalAmount:   1350,
		PaymentMethod: "khalti",
		Lines: []ConfirmationLine{
			{Name: "Vitamin C Serum", Quantity: 2, TotalPrice: 1000},
			{Name: "Night Cream", Quantity: 1, TotalPrice: 350},
		},
		EstimatedDelivery: "Sep 03, 2026",
	})

	for _, want := range []string{
		"Anita Shrestha",
		"EB-AB12CD34",
		"Vitamin C Serum x2",
		"1350.00",
		"khalti",
		"Sep 03, 2026",
		"support@everestbeauty.example",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}
