package wishlist

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/everestbeauty/storefront-backend/internal/user"
)

// Handler keeps wishlist routing isolated from the user handler.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/wishlist", h.getWishlist)
	app.Post("/api/v1/wishlist", h.addToWishlist)
	app.Delete("/api/v1/wishlist/:productId<[0-9]+>", h.removeFromWishlist)
}

type wishlistRequest struct {
	ProductID int `json:"productId"`
}

func (h *Handler) addToWishlist(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(wishlistRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	entry, err := h.service.Add(userID, payload.ProductID)
	switch err {
	case nil:
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"added": true, "entry": entry})
	case ErrAlreadySaved:
		// not an error from the shopper's point of view
		return c.JSON(fiber.Map{"added": false, "message": "product already in wishlist"})
	case ErrProductUnknown:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}

func (h *Handler) removeFromWishlist(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	if err := h.service.Remove(userID, productID); err != nil {
		if err == ErrNotSaved {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not in wishlist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	entries, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"items": entries, "count": len(entries)})
}
