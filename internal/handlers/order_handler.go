package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/olimjonbek/savdo-backend/internal/services"
	"github.com/olimjonbek/savdo-backend/internal/session"
)

type OrderHandler struct {
	orders  *services.OrderService
	catalog *services.CatalogService
}

func NewOrderHandler(orders *services.OrderService, catalog *services.CatalogService) *OrderHandler {
	return &OrderHandler{orders: orders, catalog: catalog}
}

// Submit captures a purchase intent for the product in the path.
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, fieldErrs, err := h.orders.Submit(c.UserContext(), userID, c.Params("slug"), &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit order",
		})
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrorResponse{
			Error: true, MessagesError: fieldErrs.Messages(), Fields: fieldErrs,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Comment attaches a comment to a product.
func (h *OrderHandler) Comment(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.catalog.AddComment(c.UserContext(), userID, req.ProductSlug, req.Text); err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Product not found",
			})
		case errors.Is(err, services.ErrCommentRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to save comment",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Comment added"})
}
