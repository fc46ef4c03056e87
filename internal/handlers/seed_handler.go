package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shoplist/backend/internal/services"
)

type SeedHandler struct {
	seedService *services.SeedService
}

func NewSeedHandler(seedService *services.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// Execute wipes and reloads the fixture dataset. The production gate lives
// in the service, not here.
func (h *SeedHandler) Execute(c *fiber.Ctx) error {
	ok, err := h.seedService.ExecuteSeed()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"executed": ok})
}
