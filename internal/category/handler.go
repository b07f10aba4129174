package category

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/categories", h.getCategories)
	app.Get("/api/v1/categories/:slug", h.getCategory)
	app.Get("/api/v1/brands", h.getBrands)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	items, err := h.service.ListCategories(queryLimit(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}

func (h *Handler) getCategory(c *fiber.Ctx) error {
	item, err := h.service.GetCategoryBySlug(c.Params("slug"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(item)
}

func (h *Handler) getBrands(c *fiber.Ctx) error {
	items, err := h.service.ListBrands(queryLimit(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(items)
}

func queryLimit(c *fiber.Ctx) int {
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			return v
		}
	}
	return 0
}
