package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/ownership"
	"github.com/shoplist/backend/internal/services"
)

type ListItemHandler struct {
	listItemsService *services.ListItemsService
}

func NewListItemHandler(listItemsService *services.ListItemsService) *ListItemHandler {
	return &ListItemHandler{listItemsService: listItemsService}
}

func (h *ListItemHandler) Create(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var input dto.CreateListItemInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	listItem, err := h.listItemsService.Create(&input, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(listItem)
}

func (h *ListItemHandler) Get(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid list item id")
	}

	listItem, err := h.listItemsService.FindOne(id, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listItem)
}

func (h *ListItemHandler) Update(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid list item id")
	}

	var input dto.UpdateListItemInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}
	input.ID = id

	listItem, err := h.listItemsService.Update(&input, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listItem)
}

func (h *ListItemHandler) Delete(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid list item id")
	}

	listItem, err := h.listItemsService.Remove(id, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listItem)
}
