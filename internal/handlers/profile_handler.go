package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/olimjonbek/savdo-backend/internal/services"
	"github.com/olimjonbek/savdo-backend/internal/session"
)

type ProfileHandler struct {
	profiles *services.ProfileService
	users    *services.UserService
}

func NewProfileHandler(profiles *services.ProfileService, users *services.UserService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, users: users}
}

// Page returns the profile form view model pre-filled with the current
// user.
func (h *ProfileHandler) Page(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.users.FindByID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	return c.JSON(fiber.Map{
		"page": "profile",
		"user": dto.UserResponse{
			ID:          user.ID,
			PhoneNumber: user.PhoneNumber,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			Email:       user.Email,
			Role:        user.Role,
		},
	})
}

// Update validates and persists the profile form.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, fieldErrs, err := h.profiles.Update(c.UserContext(), userID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FormErrorResponse{
			Error: true, MessagesError: fieldErrs.Messages(), Fields: fieldErrs,
		})
	}

	return c.JSON(resp)
}
