package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/models"
	"github.com/shoplist/backend/internal/ownership"
)

// RoleRequired gates a route on the current user's role set intersecting the
// required roles. Must run after CurrentUser.
func RoleRequired(required ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := ownership.CurrentUser(c)
		if err != nil {
			return unauthorized(c, "Unauthorized")
		}

		if !models.HasAnyRole(user.Roles, required...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "insufficient privileges",
			})
		}

		return c.Next()
	}
}
