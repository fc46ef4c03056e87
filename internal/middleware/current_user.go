package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/apperrors"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/ownership"
	"github.com/shoplist/backend/internal/services"
)

// CurrentUser resolves the verified token to an active user and stores it in
// the request context. Runs after JWTProtected, so signature and expiry are
// already checked; this step covers resolution and the active-account gate.
func CurrentUser(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return unauthorized(c, "Unauthorized")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return unauthorized(c, "Invalid claims")
		}

		sub, _ := claims["id"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return unauthorized(c, "Invalid claims")
		}

		user, err := authService.ValidateUser(userID)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindAuthorization) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Error: true, Message: err.Error(),
				})
			}
			return unauthorized(c, "Unauthorized")
		}

		ownership.SetCurrentUser(c, user)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
