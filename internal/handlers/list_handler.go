package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/ownership"
	"github.com/shoplist/backend/internal/services"
)

type ListHandler struct {
	listsService     *services.ListsService
	listItemsService *services.ListItemsService
}

func NewListHandler(listsService *services.ListsService, listItemsService *services.ListItemsService) *ListHandler {
	return &ListHandler{listsService: listsService, listItemsService: listItemsService}
}

func (h *ListHandler) Create(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var input dto.CreateListInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	list, err := h.listsService.Create(&input, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(list)
}

func (h *ListHandler) List(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	pagination, search := queryArgs(c)
	lists, err := h.listsService.FindAll(user, pagination, search)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lists)
}

func (h *ListHandler) Count(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	count, err := h.listsService.CountByUser(user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *ListHandler) Get(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid list id")
	}

	list, err := h.listsService.FindOne(id, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListItems returns the paginated associations of one of the caller's lists.
func (h *ListHandler) ListItems(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid list id")
	}

	list, err := h.listsService.FindOne(id, user)
	if err != nil {
		return respondError(c, err)
	}

	pagination, search := queryArgs(c)
	listItems, err := h.listItemsService.FindAll(list, pagination, search)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(listItems)
}

// CountItems returns how many live associations the list holds.
func (h *ListHandler) CountItems(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid list id")
	}

	list, err := h.listsService.FindOne(id, user)
	if err != nil {
		return respondError(c, err)
	}

	count, err := h.listItemsService.CountByList(list)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *ListHandler) Update(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid list id")
	}

	var input dto.UpdateListInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}
	input.ID = id

	list, err := h.listsService.Update(&input, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

func (h *ListHandler) Delete(c *fiber.Ctx) error {
	user, err := ownership.CurrentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid list id")
	}

	list, err := h.listsService.Remove(id, user)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
