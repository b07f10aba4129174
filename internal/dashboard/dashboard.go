package dashboard

// Stats is the admin overview payload.
type Stats struct {
	TotalProducts int          `json:"totalProducts"`
	TotalUsers    int          `json:"totalUsers"`
	TotalReviews  int          `json:"totalReviews"`
	TotalOrders   int          `json:"totalOrders"`
	RecentUsers   []RecentUser `json:"recentUsers"`
}

// RecentUser is a trimmed account row for the admin overview.
type RecentUser struct {
	ID        int    `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// NavCounts feeds the badge numbers in the site header.
type NavCounts struct {
	CartItems     int `json:"cartItems"`
	WishlistItems int `json:"wishlistItems"`
}

// ContactMessage is a stored enquiry from the contact form.
type ContactMessage struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}
