package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/ownership"
	"github.com/shoplist/backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Signup(&input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Login(&input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Revalidate issues a fresh token for the already-authenticated caller.
func (h *AuthHandler) Revalidate(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.authService.RevalidateToken(user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
