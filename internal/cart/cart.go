package cart

// Cart belongs to exactly one of an authenticated user or an anonymous
// session key. The row is created lazily and survives checkout; only its
// items are deleted.
type Cart struct {
	ID         int     `json:"cartId"`
	UserID     *int    `json:"userId,omitempty"`
	SessionKey *string `json:"-"`
	CreatedAt  string  `json:"createdAt,omitempty"`
	UpdatedAt  string  `json:"updatedAt,omitempty"`
}

// Item is one cart line. Product details and UnitPrice are filled from the
// live catalog when the cart is read, never stored.
type Item struct {
	ID          int     `json:"itemId"`
	CartID      int     `json:"cartId"`
	ProductID   int     `json:"productId"`
	Quantity    int     `json:"quantity"`
	ProductName string  `json:"productName,omitempty"`
	ProductSlug string  `json:"productSlug,omitempty"`
	SKU         string  `json:"sku,omitempty"`
	UnitPrice   float64 `json:"unitPrice"`
	Image       *string `json:"image,omitempty"`
	Subtotal    float64 `json:"subtotal"`
}

// Summary is the cart view returned by every cart endpoint: the cart, its
// live-priced items and the derived totals.
type Summary struct {
	Cart        Cart    `json:"cart"`
	Items       []Item  `json:"items"`
	TotalItems  int     `json:"totalItems"`
	TotalAmount float64 `json:"totalAmount"`
}

// Identity is the caller of a cart operation: a user id for authenticated
// requests, a session key for guests. Exactly one side is set.
type Identity struct {
	UserID     int
	SessionKey string
}

func (id Identity) Anonymous() bool { return id.UserID == 0 }

// owns reports whether this identity may touch the given cart.
func (id Identity) owns(c Cart) bool {
	if !id.Anonymous() {
		return c.UserID != nil && *c.UserID == id.UserID
	}
	return c.SessionKey != nil && *c.SessionKey == id.SessionKey && id.SessionKey != ""
}
