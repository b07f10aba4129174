package product

// Product represents a catalog item. Prices are stored in the shop currency;
// DiscountPrice, when set and lower than Price, is the price a buyer actually
// pays right now.
type Product struct {
	ID            int      `json:"productId"`
	SKU           string   `json:"sku"`
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	BrandID       *int     `json:"brandId,omitempty"`
	CategoryID    *int     `json:"categoryId,omitempty"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
	Image         *string  `json:"image,omitempty"`
	IsActive      bool     `json:"isActive"`
	IsFeatured    bool     `json:"isFeatured"`
	IsBestseller  bool     `json:"isBestseller"`
	IsNewArrival  bool     `json:"isNewArrival"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}

// CurrentPrice is the live price used by carts and order snapshots.
func (p Product) CurrentPrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 && *p.DiscountPrice < p.Price {
		return *p.DiscountPrice
	}
	return p.Price
}

// Suggestion is the lightweight DTO returned by the search-bar suggestion API.
type Suggestion struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
