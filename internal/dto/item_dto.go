package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/apperrors"
)

type CreateItemInput struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

func (in *CreateItemInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.Validation("item name must not be empty")
	}
	if in.Quantity < 0 {
		return apperrors.Validation("quantity must not be negative")
	}
	return nil
}

// UpdateItemInput is a partial patch; nil fields are left untouched.
type UpdateItemInput struct {
	ID       uuid.UUID `json:"id"`
	Name     *string   `json:"name"`
	Quantity *float64  `json:"quantity"`
}

func (in *UpdateItemInput) Validate() error {
	if in.ID == uuid.Nil {
		return apperrors.Validation("item id is required")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return apperrors.Validation("item name must not be empty")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return apperrors.Validation("quantity must not be negative")
	}
	return nil
}
