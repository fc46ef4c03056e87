package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shoplist/backend/internal/apperrors"
	"github.com/shoplist/backend/internal/dto"
)

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindAuthentication:
		return fiber.StatusUnauthorized
	case apperrors.KindAuthorization:
		return fiber.StatusForbidden
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusForKind(apperrors.KindOf(err))).JSON(dto.ErrorResponse{
		Error:   true,
		Message: err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

// queryArgs reads the shared pagination/search query params, falling back to
// the default window when a param is absent. Explicit zero or negative
// values are kept so the services can reject them.
func queryArgs(c *fiber.Ctx) (dto.PaginationArgs, dto.SearchArgs) {
	defaults := dto.DefaultPagination()
	pagination := dto.PaginationArgs{
		Page:  c.QueryInt("page", defaults.Page),
		Limit: c.QueryInt("limit", defaults.Limit),
	}
	return pagination, dto.SearchArgs{Search: c.Query("search")}
}
