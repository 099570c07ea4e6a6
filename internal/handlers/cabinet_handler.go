package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/olimjonbek/savdo-backend/internal/config"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/olimjonbek/savdo-backend/internal/services"
	"github.com/olimjonbek/savdo-backend/internal/session"
)

// CabinetHandler serves the authenticated seller cabinet pages. Most
// are placeholders the frontend fills in; the market page lists the
// seller's own products.
type CabinetHandler struct {
	catalog *services.CatalogService
	cfg     *config.Config
}

func NewCabinetHandler(catalog *services.CatalogService, cfg *config.Config) *CabinetHandler {
	return &CabinetHandler{catalog: catalog, cfg: cfg}
}

func (h *CabinetHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":  "dashboard",
		"phone": session.Phone(c),
		"role":  session.Role(c),
	})
}

func (h *CabinetHandler) Market(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	products, err := h.catalog.SellerProducts(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load market",
		})
	}

	stores, err := h.catalog.SellerStores(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load market",
		})
	}

	return c.JSON(fiber.Map{
		"page":     "market",
		"stores":   stores,
		"products": products,
	})
}

func (h *CabinetHandler) Stream(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "stream"})
}

// Statistics is a stub: sales statistics are not computed yet.
func (h *CabinetHandler) Statistics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "statistics"})
}

// Payment is a stub: payment processing is out of scope.
func (h *CabinetHandler) Payment(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "payment"})
}

// Aloqa is the public contact page.
func (h *CabinetHandler) Aloqa(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":    "aloqa",
		"phone":   h.cfg.ContactPhone,
		"address": h.cfg.ContactAddress,
	})
}
