package wishlist

// Entry is one saved product for a user. Product details are filled live at
// read time so the wishlist always reflects current pricing.
type Entry struct {
	ID        int    `json:"id"`
	UserID    int    `json:"-"`
	ProductID int    `json:"productId"`
	AddedAt   string `json:"addedAt"`

	ProductName string  `json:"productName,omitempty"`
	ProductSlug string  `json:"productSlug,omitempty"`
	UnitPrice   float64 `json:"unitPrice,omitempty"`
	Image       *string `json:"image,omitempty"`
	IsActive    bool    `json:"isActive,omitempty"`
}
