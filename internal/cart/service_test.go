package cart

import (
	"testing"

	"github.com/everestbeauty/storefront-backend/internal/product"
)

func seededProducts() *product.Service {
	discount := 350.0
	return product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 1, SKU: "EB-SER-001", Slug: "vitamin-c-serum", Name: "Vitamin C Serum", Price: 500, IsActive: true},
		{ID: 2, SKU: "EB-CRM-002", Slug: "night-cream", Name: "Night Cream", Price: 400, DiscountPrice: &discount, IsActive: true},
		{ID: 3, SKU: "EB-MSK-003", Slug: "clay-mask", Name: "Clay Mask", Price: 250, IsActive: false},
	}))
}

func TestAddIncrementsExistingLine(t *testing.T) {
	service := NewService(NewInMemoryRepository(), seededProducts())
	shopper := Identity{UserID: 7}

	if _, err := service.Add(shopper, 1, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	sum, err := service.Add(shopper, 1, 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(sum.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(sum.Items))
	}
	if sum.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", sum.Items[0].Quantity)
	}
}

func TestAddRejectsInactiveProduct(t *testing.T) {
	service := NewService(NewInMemoryRepository(), seededProducts())

	if _, err := service.Add(Identity{UserID: 7}, 3, 1); err != product.ErrNotFound {
		t.Fatalf("expected ErrNotFound for inactive product, got %v", err)
	}
}

func TestAddCoercesQuantityToOne(t *testing.T) {
	service := NewService(NewInMemoryRepository(), seededProducts())

	sum, err := service.Add(Identity{UserID: 7}, 1, -4)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if sum.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", sum.Items[0].Quantity)
	}
}

func TestSummaryUsesDiscountPricing(t *testing.T) {
	service := NewService(NewInMemoryRepository(), seededProducts())
	shopper := Identity{UserID: 7}

	if _, err := service.Add(shopper, 1, 2); err != nil {
		t.Fatalf("add serum: %v", err)
	}
	sum, err := service.Add(shopper, 2, 1)
	if err != nil {
		t.Fatalf("add cream: %v", err)
	}

	// 2 x 500 at list price, 1 x 350 discounted
	if sum.TotalAmount != 1350 {
		t.Fatalf("expected total 1350, got %v", sum.TotalAmount)
	}
	if sum.TotalItems != 3 {
		t.Fatalf("expected 3 items, got %d", sum.TotalItems)
	}
}

func TestUpdateItemToZeroDeletesLine(t *testing.T) {
	service := NewService(NewInMemoryRepository(), seededProducts())
	shopper := Identity{UserID: 7}

	sum, err := service.Add(shopper, 1, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	itemID := sum.Items[0].ID

	sum, err = service.UpdateItem(shopper, itemID, 0)
	if err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if len(sum.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(sum.Items))
	}

	// the line is really gone, not hidden
	if _, err := service.UpdateItem(shopper, itemID, 1); err != ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound for deleted line, got %v", err)
	}
}

func TestUpdateItemRejectsOtherPeoplesLines(t *testing.T) {
	service := NewService(NewInMemoryRepository(), seededProducts())

	sum, err := service.Add(Identity{UserID: 7}, 1, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := service.UpdateItem(Identity{UserID: 8}, sum.Items[0].ID, 5); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := service.UpdateItem(Identity{SessionKey: "someone-else"}, sum.Items[0].ID, 5); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden for session caller, got %v", err)
	}
}

func TestGuestAndUserCartsAreSeparate(t *testing.T) {
	service := NewService(NewInMemoryRepository(), seededProducts())

	if _, err := service.Add(Identity{UserID: 7}, 1, 1); err != nil {
		t.Fatalf("user add: %v", err)
	}
	guestSum, err := service.Add(Identity{SessionKey: "abc-123"}, 2, 2)
	if err != nil {
		t.Fatalf("guest add: %v", err)
	}

	if len(guestSum.Items) != 1 || guestSum.Items[0].ProductID != 2 {
		t.Fatalf("guest cart leaked user lines: %+v", guestSum.Items)
	}
}

func TestSummarySkipsVanishedProducts(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, seededProducts())
	shopper := Identity{UserID: 7}

	c, err := service.Resolve(shopper)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	// a line pointing at a product that no longer exists
	if err := repo.UpsertItem(c.ID, 99, 1, ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.UpsertItem(c.ID, 1, 1, ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	sum, err := service.Summary(c)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(sum.Items) != 1 || sum.Items[0].ProductID != 1 {
		t.Fatalf("expected only the live product, got %+v", sum.Items)
	}
	if sum.TotalAmount != 500 {
		t.Fatalf("expected total 500, got %v", sum.TotalAmount)
	}
}
