package order

// Status is the order lifecycle state. Transitions happen only through the
// table below; anything else is rejected.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusDelivered, StatusCancelled},
	StatusCompleted:  {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// CanCancel reports whether a buyer may still cancel from this state.
func (s Status) CanCancel() bool {
	return s.CanTransitionTo(StatusCancelled)
}

// delivered reports whether the order counts as a fulfilled purchase for
// review verification.
func (s Status) fulfilled() bool {
	return s == StatusCompleted || s == StatusDelivered
}

// Delivery methods accepted at checkout. Anything else ships free, matching
// the storefront's historical behaviour for pickup-style options.
const (
	DeliveryExpress  = "express"
	DeliveryStandard = "standard"
)

const (
	expressFee            = 200
	standardFee           = 100
	freeStandardThreshold = 1000
)

// DeliveryFee implements the fixed pricing policy: express always costs 200,
// standard is free from a 1000 subtotal and 100 below it.
func DeliveryFee(subtotal float64, method string) float64 {
	switch method {
	case DeliveryExpress:
		return expressFee
	case DeliveryStandard:
		if subtotal >= freeStandardThreshold {
			return 0
		}
		return standardFee
	default:
		return 0
	}
}

// Order is an immutable purchase record. TotalAmount is fixed at creation
// (items subtotal + delivery fee) and never recomputed from the catalog.
type Order struct {
	ID              int     `json:"orderId"`
	OrderNumber     string  `json:"orderNumber"`
	UserID          int     `json:"userId"`
	Status          Status  `json:"status"`
	TotalAmount     float64 `json:"totalAmount"`
	ShippingAddress string  `json:"shippingAddress"`
	ShippingPhone   string  `json:"shippingPhone"`
	ShippingEmail   string  `json:"shippingEmail"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentStatus   string  `json:"paymentStatus"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
	Items           []Item  `json:"items,omitempty"`
}

// Item is a frozen snapshot of one cart line at the instant of purchase.
type Item struct {
	ID          int     `json:"itemId"`
	OrderID     int     `json:"orderId"`
	ProductName string  `json:"productName"`
	ProductSKU  string  `json:"productSku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}
