package wishlist

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/everestbeauty/storefront-backend/internal/product"
)

func makeWishlistApp() *fiber.App {
	products := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 1, SKU: "EB-SER-001", Slug: "vitamin-c-serum", Name: "Vitamin C Serum", Price: 500, IsActive: true},
		{ID: 2, SKU: "EB-MSK-003", Slug: "clay-mask", Name: "Clay Mask", Price: 250, IsActive: false},
	}))
	handler := NewHandler(NewService(NewInMemoryRepository(nil), products))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"user_id": id}})
			}
		}
		return c.Next()
	})
	handler.RegisterProtectedRoutes(app)
	return app
}

func TestWishlistAddListRemove(t *testing.T) {
	app := makeWishlistApp()

	// unauthenticated callers are rejected
	req := httptest.NewRequest("GET", "/api/v1/wishlist", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", res.StatusCode)
	}

	// add a product
	req2 := httptest.NewRequest("POST", "/api/v1/wishlist", strings.NewReader(`{"productId":1}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "7")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for add, got %d", res2.StatusCode)
	}

	// adding again is reported, not failed
	req3 := httptest.NewRequest("POST", "/api/v1/wishlist", strings.NewReader(`{"productId":1}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "7")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for duplicate add, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"added":false`) {
		t.Fatalf("expected added:false, got %s", string(b3))
	}

	// the list carries live product details
	req4 := httptest.NewRequest("GET", "/api/v1/wishlist", nil)
	req4.Header.Set("X-User-ID", "7")
	res4, _ := app.Test(req4)
	b4, _ := io.ReadAll(res4.Body)
	if !strings.Contains(string(b4), `"count":1`) || !strings.Contains(string(b4), "Vitamin C Serum") {
		t.Fatalf("unexpected wishlist body: %s", string(b4))
	}

	// remove and verify empty
	req5 := httptest.NewRequest("DELETE", "/api/v1/wishlist/1", nil)
	req5.Header.Set("X-User-ID", "7")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for remove, got %d", res5.StatusCode)
	}

	// removing again is a 404
	req6 := httptest.NewRequest("DELETE", "/api/v1/wishlist/1", nil)
	req6.Header.Set("X-User-ID", "7")
	res6, _ := app.Test(req6)
	if res6.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for double remove, got %d", res6.StatusCode)
	}
}

func TestWishlistRejectsInactiveProduct(t *testing.T) {
	app := makeWishlistApp()

	req := httptest.NewRequest("POST", "/api/v1/wishlist", strings.NewReader(`{"productId":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for inactive product, got %d", res.StatusCode)
	}
}
