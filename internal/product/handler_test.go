package product

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeProductApp() *fiber.App {
	app := fiber.New()
	NewHandler(searchCatalog()).RegisterPublicRoutes(app)
	return app
}

func TestSearchEndpointShape(t *testing.T) {
	app := makeProductApp()

	req := httptest.NewRequest("GET", "/api/v1/products/search?q=serum", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var body struct {
		Products     []Product `json:"products"`
		Query        string    `json:"query"`
		TotalResults int       `json:"totalResults"`
	}
	raw, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("bad response %s: %v", string(raw), err)
	}
	if body.Query != "serum" || body.TotalResults != 2 || len(body.Products) != 2 {
		t.Fatalf("unexpected payload: %+v", body)
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	app := makeProductApp()

	req := httptest.NewRequest("GET", "/api/v1/products/suggestions?q=se", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var body struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	raw, _ := io.ReadAll(res.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("bad response %s: %v", string(raw), err)
	}
	if len(body.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(body.Suggestions))
	}

	// below the minimum query length the list is empty, not an error
	req2 := httptest.NewRequest("GET", "/api/v1/products/suggestions?q=s", nil)
	res2, _ := app.Test(req2)
	raw2, _ := io.ReadAll(res2.Body)
	if err := json.Unmarshal(raw2, &body); err != nil {
		t.Fatalf("bad response %s: %v", string(raw2), err)
	}
	if len(body.Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %d", len(body.Suggestions))
	}
}

func TestProductDetailHidesInactive(t *testing.T) {
	app := makeProductApp()

	req := httptest.NewRequest("GET", "/api/v1/product/4", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for inactive product, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/product/1", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for active product, got %d", res2.StatusCode)
	}

	req3 := httptest.NewRequest("GET", "/api/v1/product/slug/night-cream", nil)
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for slug lookup, got %d", res3.StatusCode)
	}
}
