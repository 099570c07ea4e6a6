package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/olimjonbek/savdo-backend/internal/dto"
	"github.com/olimjonbek/savdo-backend/internal/models"
	"github.com/olimjonbek/savdo-backend/internal/session"
	"gorm.io/gorm"
)

// AdminRequired checks the role claim first and falls back to the
// user's DB record, so a freshly promoted admin does not have to wait
// for the token to expire.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if session.Role(c) == models.RoleAdmin {
			return c.Next()
		}

		userID, err := session.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil {
			if user.Role == models.RoleAdmin || user.IsSuperuser {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}
