package product

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/featured", h.getFeatured)
	app.Get("/api/v1/products/bestsellers", h.getBestsellers)
	app.Get("/api/v1/products/new-arrivals", h.getNewArrivals)
	app.Get("/api/v1/products/search", h.search)
	app.Get("/api/v1/products/suggestions", h.suggest)
	app.Get("/api/v1/product/:id<[0-9]+>", h.getProduct)
	app.Get("/api/v1/product/slug/:slug", h.getProductBySlug)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/products", h.createProduct)
	app.Put("/api/v1/product/:id<[0-9]+>", h.updateProduct)
	app.Delete("/api/v1/product/:id<[0-9]+>", h.deleteProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func shelfLimit(c *fiber.Ctx, fallback int) int {
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func (h *Handler) getFeatured(c *fiber.Ctx) error {
	products, err := h.service.ListFeatured(shelfLimit(c, 8))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) getBestsellers(c *fiber.Ctx) error {
	products, err := h.service.ListBestsellers(shelfLimit(c, 6))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) getNewArrivals(c *fiber.Ctx) error {
	products, err := h.service.ListNewArrivals(shelfLimit(c, 6))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) search(c *fiber.Ctx) error {
	query := c.Query("q")
	products, err := h.service.Search(query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{
		"products":     products,
		"query":        query,
		"totalResults": len(products),
	})
}

func (h *Handler) suggest(c *fiber.Ctx) error {
	suggestions, err := h.service.Suggest(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	p, err := h.service.GetActiveByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) getProductBySlug(c *fiber.Ctx) error {
	p, err := h.service.GetActiveBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	var p Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if p.Name == "" || p.SKU == "" || p.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name, sku and a non-negative price are required"})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now
	created, err := h.service.Create(p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	var p Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	updated, err := h.service.Update(id, p)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
