package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/olimjonbek/savdo-backend/internal/services"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Home serves the landing page view model.
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	resp, err := h.catalog.Home(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load catalog",
		})
	}
	return c.JSON(resp)
}

// ProductList serves all products, optionally filtered by ?category=.
func (h *CatalogHandler) ProductList(c *fiber.Ctx) error {
	resp, err := h.catalog.ListProducts(c.UserContext(), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load products",
		})
	}
	return c.JSON(resp)
}

// ProductDetail serves one product by slug, with its order form data.
func (h *CatalogHandler) ProductDetail(c *fiber.Ctx) error {
	resp, err := h.catalog.ProductDetail(c.UserContext(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load product",
		})
	}
	return c.JSON(resp)
}
