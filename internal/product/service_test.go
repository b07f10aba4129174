package product

import (
	"fmt"
	"testing"
)

func searchCatalog() *Service {
	discount := 99.0
	bad := 600.0
	return NewService(NewInMemoryRepository([]Product{
		{ID: 1, SKU: "EB-SER-001", Slug: "vitamin-c-serum", Name: "Vitamin C Serum", Price: 500, IsActive: true},
		{ID: 2, SKU: "EB-SER-002", Slug: "hyaluronic-serum", Name: "Hyaluronic Serum", Price: 450, DiscountPrice: &discount, IsActive: true},
		{ID: 3, SKU: "EB-CRM-001", Slug: "night-cream", Name: "Night Cream", Price: 400, IsActive: true},
		{ID: 4, SKU: "EB-SER-003", Slug: "retinol-serum", Name: "Retinol Serum", Price: 700, IsActive: false},
		{ID: 5, SKU: "EB-TNR-001", Slug: "rose-toner", Name: "Rose Toner", Price: 300, DiscountPrice: &bad, IsActive: true},
	}))
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	s := searchCatalog()

	got, err := s.Search("SERUM")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	// the inactive retinol serum must not appear
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for _, p := range got {
		if !p.IsActive {
			t.Fatalf("inactive product leaked into search: %+v", p)
		}
	}

	got, err = s.Search("  cream ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "night-cream" {
		t.Fatalf("expected night-cream, got %+v", got)
	}

	// descriptions are not searched, only names
	got, _ = s.Search("xyzzy")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestSearchEmptyQueryReturnsAllActive(t *testing.T) {
	s := searchCatalog()

	got, err := s.Search("   ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected all 4 active products, got %d", len(got))
	}
}

func TestSuggestNeedsTwoCharacters(t *testing.T) {
	s := searchCatalog()

	got, err := s.Suggest("s")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no suggestions for 1-char query, got %d", len(got))
	}

	got, err = s.Suggest("se")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
	if got[0].Name == "" || got[0].Slug == "" {
		t.Fatalf("suggestion missing fields: %+v", got[0])
	}
}

func TestSuggestCapsAtEight(t *testing.T) {
	seed := make([]Product, 0, 12)
	for i := 1; i <= 12; i++ {
		seed = append(seed, Product{
			ID:       i,
			SKU:      fmt.Sprintf("EB-GLW-%03d", i),
			Slug:     fmt.Sprintf("glow-oil-%d", i),
			Name:     fmt.Sprintf("Glow Oil %d", i),
			Price:    100,
			IsActive: true,
		})
	}
	s := NewService(NewInMemoryRepository(seed))

	got, err := s.Suggest("glow")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(got) != maxSuggestions {
		t.Fatalf("expected %d suggestions, got %d", maxSuggestions, len(got))
	}
}

func TestCurrentPriceIgnoresBogusDiscounts(t *testing.T) {
	s := searchCatalog()

	p, err := s.GetActiveByID(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.CurrentPrice() != 99 {
		t.Fatalf("expected discounted price 99, got %v", p.CurrentPrice())
	}

	// a discount above the list price is not a discount
	p, err = s.GetActiveByID(5)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.CurrentPrice() != 300 {
		t.Fatalf("expected list price 300, got %v", p.CurrentPrice())
	}
}

func TestGetActiveByIDHidesInactive(t *testing.T) {
	s := searchCatalog()

	if _, err := s.GetActiveByID(4); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for inactive product, got %v", err)
	}
	if _, err := s.GetByID(4); err != nil {
		t.Fatalf("admin lookup should still find it: %v", err)
	}
}
