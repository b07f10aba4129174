package order

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/everestbeauty/storefront-backend/internal/user"
)

type Handler struct {
	service     *Service
	userService user.ServiceInterface
}

func NewHandler(s *Service, us user.ServiceInterface) *Handler {
	return &Handler{service: s, userService: us}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.checkout)
	app.Get("/api/v1/orders", h.listOrders)
	app.Get("/api/v1/orders/:id<[0-9]+>", h.getOrder)
	app.Get("/api/v1/orders/:id<[0-9]+>/tracking", h.getOrder)
	app.Post("/api/v1/orders/:id<[0-9]+>/cancel", h.cancelOrder)
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(CheckoutInput)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// the confirmation email goes to the account address, like the original
	// shipping_email behaviour
	u, err := h.userService.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}

	ord, err := h.service.Checkout(userID, u.Email, *payload)
	if err != nil {
		switch err {
		case ErrMissingFields:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Please fill all required fields."})
		case ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Your cart is empty."})
		default:
			fmt.Printf("checkout failed for user %d: %v\n", userID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Could not place your order. Please try again."})
		}
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"orderId":     ord.ID,
		"orderNumber": ord.OrderNumber,
	})
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	ord, err := h.service.GetForUser(userID, orderID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	return c.JSON(ord)
}

func (h *Handler) cancelOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	ord, err := h.service.Cancel(userID, orderID)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case ErrCannotCancel:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Order #%s cannot be cancelled (current status: %s).", ord.OrderNumber, ord.Status),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}
