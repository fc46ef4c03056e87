package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/ownership"
	"github.com/shoplist/backend/internal/services"
)

type ItemHandler struct {
	itemsService *services.ItemsService
}

func NewItemHandler(itemsService *services.ItemsService) *ItemHandler {
	return &ItemHandler{itemsService: itemsService}
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var input dto.CreateItemInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	item, err := h.itemsService.Create(&input, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	pagination, search := queryArgs(c)
	items, err := h.itemsService.FindAll(user, pagination, search)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) Count(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	count, err := h.itemsService.CountByUser(user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *ItemHandler) Get(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	item, err := h.itemsService.FindOne(id, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) Update(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	var input dto.UpdateItemInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}
	input.ID = id

	item, err := h.itemsService.Update(&input, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	item, err := h.itemsService.Remove(id, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}
