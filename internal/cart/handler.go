package cart

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/everestbeauty/storefront-backend/internal/product"
	"github.com/everestbeauty/storefront-backend/internal/user"
)

// sessionCookie carries the anonymous cart key. Guests keep their cart across
// visits for as long as the cookie lives.
const sessionCookie = "cart_session"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// RegisterPublicRoutes mounts the cart endpoints outside the JWT middleware:
// guests shop too. Logged-in callers are recognised from the Authorization
// header instead of the middleware locals.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Patch("/api/v1/cart/items/:id<[0-9]+>", h.updateItem)
	app.Delete("/api/v1/cart/items/:id<[0-9]+>", h.removeItem)
}

// PeekIdentity resolves the caller without minting a session cookie. Meant
// for read-only callers such as the navbar counts; an empty identity means
// the caller has no cart yet.
func PeekIdentity(c *fiber.Ctx) Identity {
	if userID := user.UserIDFromAuthHeader(c); userID > 0 {
		return Identity{UserID: userID}
	}
	return Identity{SessionKey: c.Cookies(sessionCookie)}
}

// resolveIdentity picks the caller's cart identity: JWT user when present,
// otherwise the session cookie, minting a fresh key on first contact.
func resolveIdentity(c *fiber.Ctx) Identity {
	if userID := user.UserIDFromAuthHeader(c); userID > 0 {
		return Identity{UserID: userID}
	}

	key := c.Cookies(sessionCookie)
	if key == "" {
		key = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    key,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}
	return Identity{SessionKey: key}
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	cartRow, err := h.service.Resolve(resolveIdentity(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	sum, err := h.service.Summary(cartRow)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(sum)
}

type addItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity,omitempty"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	sum, err := h.service.Add(resolveIdentity(c), payload.ProductID, payload.Quantity)
	if err != nil {
		switch err {
		case product.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(sum)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}
	payload := new(updateItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sum, err := h.service.UpdateItem(resolveIdentity(c), itemID, payload.Quantity)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(sum)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}

	sum, err := h.service.RemoveItem(resolveIdentity(c), itemID)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(sum)
}

func cartError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrItemNotFound, ErrCartNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart item not found"})
	case ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "not your cart"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
