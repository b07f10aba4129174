package review

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/everestbeauty/storefront-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// Listing stays public so guests can read reviews; the viewer fields in the
// payload are filled from the Authorization header when one is present.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products/:productId<[0-9]+>/reviews", h.listReviews)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/products/:productId<[0-9]+>/reviews", h.addReview)
	app.Put("/api/v1/reviews/:id<[0-9]+>", h.editReview)
	app.Delete("/api/v1/reviews/:id<[0-9]+>", h.deleteReview)
	app.Post("/api/v1/reviews/:id<[0-9]+>/vote", h.voteReview)
}

func (h *Handler) listReviews(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	viewerID := user.UserIDFromAuthHeader(c)
	out, err := h.service.ListByProduct(productID, viewerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(out)
}

func (h *Handler) addReview(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	var payload Input
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Add(userID, productID, payload)
	if err != nil {
		return reviewError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) editReview(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	reviewID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid review id"})
	}

	var payload Input
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Edit(userID, reviewID, payload)
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteReview(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	reviewID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid review id"})
	}

	if err := h.service.Delete(userID, reviewID); err != nil {
		return reviewError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) voteReview(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	reviewID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid review id"})
	}

	var payload struct {
		VoteType string `json:"voteType"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.Vote(userID, reviewID, payload.VoteType)
	if err != nil {
		return reviewError(c, err)
	}
	return c.JSON(result)
}

func reviewError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound, ErrProductUnknown:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
	case ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "you have already reviewed this product"})
	case ErrInvalidRating, ErrTitleTooShort, ErrBodyTooShort, ErrInvalidVote:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
