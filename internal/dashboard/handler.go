package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/everestbeauty/storefront-backend/internal/cart"
	"github.com/everestbeauty/storefront-backend/internal/user"
)

type Handler struct {
	service *Service
	users   user.ServiceInterface
}

func NewHandler(s *Service, users user.ServiceInterface) *Handler {
	return &Handler{service: s, users: users}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/navbar-counts", h.getNavCounts)
	app.Post("/api/v1/contact", h.submitContact)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/dashboard", h.getStats)
}

func (h *Handler) getNavCounts(c *fiber.Ctx) error {
	counts, err := h.service.NavCounts(cart.PeekIdentity(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(counts)
}

func (h *Handler) submitContact(c *fiber.Ctx) error {
	var payload ContactMessage
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	saved, err := h.service.SubmitContact(payload)
	if err != nil {
		switch err {
		case ErrMissingFields, ErrInvalidEmail:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thank you for reaching out. We will get back to you soon.",
		"id":      saved.ID,
	})
}

func (h *Handler) getStats(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	caller, err := h.users.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if !caller.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}

	stats, err := h.service.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(stats)
}
