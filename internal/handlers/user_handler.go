package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/models"
	"github.com/shoplist/backend/internal/ownership"
	"github.com/shoplist/backend/internal/services"
)

// UserHandler exposes the admin surface over user records.
type UserHandler struct {
	usersService *services.UsersService
}

func NewUserHandler(usersService *services.UsersService) *UserHandler {
	return &UserHandler{usersService: usersService}
}

// List returns users filtered by the comma-separated roles query param.
// No filter means every user.
func (h *UserHandler) List(c *fiber.Ctx) error {
	var roles []models.Role
	if raw := c.Query("roles"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}
			if !models.IsValidRole(name) {
				return badRequest(c, "unknown role "+name)
			}
			roles = append(roles, models.Role(name))
		}
	}

	users, err := h.usersService.FindAll(roles)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	user, err := h.usersService.FindOneByID(id)
	if err != nil {
		return respondError(c, err)
	}
	user.Password = ""
	return c.JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	admin, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var input dto.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}
	input.ID = id

	user, err := h.usersService.Update(id, &input, admin)
	if err != nil {
		return respondError(c, err)
	}
	user.Password = ""
	return c.JSON(user)
}

func (h *UserHandler) Block(c *fiber.Ctx) error {
	admin, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	user, err := h.usersService.Block(id, admin)
	if err != nil {
		return respondError(c, err)
	}
	user.Password = ""
	return c.JSON(user)
}
