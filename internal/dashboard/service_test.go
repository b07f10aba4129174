package dashboard

import (
	"testing"

	"github.com/everestbeauty/storefront-backend/internal/cart"
	"github.com/everestbeauty/storefront-backend/internal/product"
	"github.com/everestbeauty/storefront-backend/internal/wishlist"
)

func newDashboardService() (*Service, *cart.Service, *wishlist.Service) {
	products := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 1, SKU: "EB-SER-001", Slug: "vitamin-c-serum", Name: "Vitamin C Serum", Price: 500, IsActive: true},
	}))
	carts := cart.NewService(cart.NewInMemoryRepository(), products)
	wishlists := wishlist.NewService(wishlist.NewInMemoryRepository(nil), products)
	s := NewService(NewInMemoryRepository(Stats{TotalProducts: 12, TotalUsers: 3}), carts, wishlists)
	return s, carts, wishlists
}

func TestNavCountsForUser(t *testing.T) {
	s, carts, wishlists := newDashboardService()

	if _, err := carts.Add(cart.Identity{UserID: 7}, 1, 3); err != nil {
		t.Fatalf("cart add: %v", err)
	}
	if _, err := wishlists.Add(7, 1); err != nil {
		t.Fatalf("wishlist add: %v", err)
	}

	counts, err := s.NavCounts(cart.Identity{UserID: 7})
	if err != nil {
		t.Fatalf("nav counts: %v", err)
	}
	if counts.CartItems != 3 || counts.WishlistItems != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestNavCountsForGuest(t *testing.T) {
	s, carts, _ := newDashboardService()

	if _, err := carts.Add(cart.Identity{SessionKey: "abc"}, 1, 2); err != nil {
		t.Fatalf("guest add: %v", err)
	}

	counts, err := s.NavCounts(cart.Identity{SessionKey: "abc"})
	if err != nil {
		t.Fatalf("nav counts: %v", err)
	}
	if counts.CartItems != 2 {
		t.Fatalf("expected 2 cart items, got %d", counts.CartItems)
	}
	if counts.WishlistItems != 0 {
		t.Fatalf("guests have no wishlist, got %d", counts.WishlistItems)
	}

	// a guest with no cookie gets all zeros without creating a cart
	counts, err = s.NavCounts(cart.Identity{})
	if err != nil {
		t.Fatalf("empty identity: %v", err)
	}
	if counts.CartItems != 0 || counts.WishlistItems != 0 {
		t.Fatalf("expected zeros for empty identity, got %+v", counts)
	}
}

func TestSubmitContactValidation(t *testing.T) {
	s, _, _ := newDashboardService()

	valid := ContactMessage{
		FirstName: "Anita",
		LastName:  "Shrestha",
		Email:     "anita@example.com",
		Subject:   "Order question",
		Message:   "Where is my package?",
	}

	missing := valid
	missing.Subject = "   "
	if _, err := s.SubmitContact(missing); err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	bad := valid
	bad.Email = "not-an-email"
	if _, err := s.SubmitContact(bad); err != ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}

	saved, err := s.SubmitContact(valid)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if saved.ID == 0 || saved.CreatedAt == "" {
		t.Fatalf("submission not stamped: %+v", saved)
	}
}

func TestStatsPassThrough(t *testing.T) {
	s, _, _ := newDashboardService()

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalProducts != 12 || stats.TotalUsers != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
