package ownership

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shoplist/backend/internal/apperrors"
	"github.com/shoplist/backend/internal/models"
)

const currentUserKey = "currentUser"

// SetCurrentUser stores the resolved user for the rest of the request.
func SetCurrentUser(c *fiber.Ctx, user *models.User) {
	c.Locals(currentUserKey, user)
}

// CurrentUser returns the user resolved by the auth middleware.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(currentUserKey).(*models.User)
	if !ok || user == nil {
		return nil, apperrors.Authentication("no authenticated user in request context")
	}
	return user, nil
}
