package order

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/everestbeauty/storefront-backend/internal/cart"
	"github.com/everestbeauty/storefront-backend/internal/mailer"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrMissingFields = errors.New("missing required shipping fields")
	ErrForbidden     = errors.New("order belongs to someone else")
	ErrCannotCancel  = errors.New("order can no longer be cancelled")
)

// ServiceInterface is what the review package needs from orders.
type ServiceInterface interface {
	HasPurchased(userID int, sku string) (bool, error)
}

type Service struct {
	repo   Repository
	carts  cart.ServiceInterface
	mailer mailer.Mailer
}

func NewService(repo Repository, carts cart.ServiceInterface, m mailer.Mailer) *Service {
	if m == nil {
		m = mailer.Nop{}
	}
	return &Service{repo: repo, carts: carts, mailer: m}
}

var _ ServiceInterface = (*Service)(nil)

// CheckoutInput is the shipping form. All fields arrive untrimmed.
type CheckoutInput struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Province       string `json:"province"`
	PostalCode     string `json:"postalCode"`
	DeliveryMethod string `json:"deliveryMethod"`
	PaymentMethod  string `json:"paymentMethod"`
}

func (in *CheckoutInput) trim() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.Province = strings.TrimSpace(in.Province)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	if in.DeliveryMethod == "" {
		in.DeliveryMethod = DeliveryStandard
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = "khalti"
	}
}

func (in *CheckoutInput) complete() bool {
	return in.FirstName != "" && in.LastName != "" && in.Phone != "" &&
		in.Address != "" && in.City != "" && in.Province != ""
}

// Checkout turns the user's cart into a pending order. The order row, its
// item snapshots and the cart clearing commit atomically; the confirmation
// email goes out on a goroutine only after that commit.
func (s *Service) Checkout(userID int, email string, in CheckoutInput) (Order, error) {
	in.trim()
	if !in.complete() {
		return Order{}, ErrMissingFields
	}

	c, err := s.carts.ResolveByUser(userID)
	if err != nil {
		return Order{}, err
	}
	sum, err := s.carts.Summary(c)
	if err != nil {
		return Order{}, err
	}
	if len(sum.Items) == 0 {
		return Order{}, ErrEmptyCart
	}

	fee := DeliveryFee(sum.TotalAmount, in.DeliveryMethod)
	now := time.Now().UTC().Format(time.RFC3339)
	ord := Order{
		OrderNumber: newOrderNumber(),
		UserID:      userID,
		Status:      StatusPending,
		TotalAmount: sum.TotalAmount + fee,
		ShippingAddress: fmt.Sprintf("%s %s\n%s\n%s, %s %s",
			in.FirstName, in.LastName, in.Address, in.City, in.Province, in.PostalCode),
		ShippingPhone: in.Phone,
		ShippingEmail: email,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: "pending",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, it := range sum.Items {
		ord.Items = append(ord.Items, Item{
			ProductName: it.ProductName,
			ProductSKU:  it.SKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.Subtotal,
		})
	}

	created, err := s.repo.CreateFromCart(ord, c.ID)
	if err != nil {
		return Order{}, err
	}

	customerName := strings.TrimSpace(in.FirstName + " " + in.LastName)
	deliveryMethod := in.DeliveryMethod
	go s.sendConfirmation(created, customerName, deliveryMethod)

	return created, nil
}

// sendConfirmation is best-effort: the order is already committed, so a mail
// failure is logged and dropped.
func (s *Service) sendConfirmation(ord Order, customerName, deliveryMethod string) {
	lines := make([]mailer.ConfirmationLine, 0, len(ord.Items))
	for _, it := range ord.Items {
		lines = append(lines, mailer.ConfirmationLine{
			Name:       it.ProductName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}

	err := s.mailer.SendOrderConfirmation(mailer.Confirmation{
		To:                ord.ShippingEmail,
		CustomerName:      customerName,
		OrderNumber:       ord.OrderNumber,
		Lines:             lines,
		TotalAmount:       ord.TotalAmount,
		PaymentMethod:     ord.PaymentMethod,
		OrderDate:         ord.CreatedAt,
		EstimatedDelivery: mailer.EstimatedDelivery(deliveryMethod, time.Now()),
	})
	if err != nil {
		log.Printf("order %s: confirmation email failed: %v", ord.OrderNumber, err)
	}
}

func newOrderNumber() string {
	return "EB-" + strings.ToUpper(uuid.NewString()[:8])
}

// GetForUser fetches an order only if the given user owns it. Someone else's
// order looks the same as a missing one.
func (s *Service) GetForUser(userID, orderID int) (Order, error) {
	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	if ord.UserID != userID {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

// Cancel moves an owned order to cancelled if its current state allows it.
func (s *Service) Cancel(userID, orderID int) (Order, error) {
	ord, err := s.GetForUser(userID, orderID)
	if err != nil {
		return Order{}, err
	}
	if !ord.Status.CanCancel() {
		return ord, ErrCannotCancel
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err := s.repo.UpdateStatus(ord.ID, StatusCancelled, now); err != nil {
		return Order{}, err
	}
	ord.Status = StatusCancelled
	ord.UpdatedAt = now
	return ord, nil
}

func (s *Service) HasPurchased(userID int, sku string) (bool, error) {
	return s.repo.HasPurchased(userID, sku)
}
