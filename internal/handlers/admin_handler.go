package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/olimjonbek/savdo-backend/internal/services"
)

// AdminHandler registers catalog entities. Slugs are always derived
// server-side; a submitted slug is ignored.
type AdminHandler struct {
	catalog *services.CatalogService
}

func NewAdminHandler(catalog *services.CatalogService) *AdminHandler {
	return &AdminHandler{catalog: catalog}
}

func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	category, err := h.catalog.CreateCategory(c.UserContext(), &req)
	if err != nil {
		return adminCreateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	product, err := h.catalog.CreateProduct(c.UserContext(), &req)
	if err != nil {
		return adminCreateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *AdminHandler) CreateStore(c *fiber.Ctx) error {
	var req dto.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	store, err := h.catalog.CreateStore(c.UserContext(), &req)
	if err != nil {
		return adminCreateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

func (h *AdminHandler) CreateRegion(c *fiber.Ctx) error {
	var req dto.CreateRegionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	region, err := h.catalog.CreateRegion(c.UserContext(), &req)
	if err != nil {
		return adminCreateError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(region)
}

func (h *AdminHandler) ListRegions(c *fiber.Ctx) error {
	regions, err := h.catalog.Regions(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load regions",
		})
	}
	return c.JSON(regions)
}

func adminCreateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrBadVideoFormat):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrStoreNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
