package dto

import (
	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/apperrors"
)

type CreateListItemInput struct {
	ListID    uuid.UUID `json:"list_id"`
	ItemID    uuid.UUID `json:"item_id"`
	Quantity  float64   `json:"quantity"`
	Completed bool      `json:"completed"`
}

func (in *CreateListItemInput) Validate() error {
	if in.ListID == uuid.Nil {
		return apperrors.Validation("list_id is required")
	}
	if in.ItemID == uuid.Nil {
		return apperrors.Validation("item_id is required")
	}
	if in.Quantity < 0 {
		return apperrors.Validation("quantity must not be negative")
	}
	return nil
}

// UpdateListItemInput is a partial patch; nil fields are left untouched.
// ListID/ItemID re-point the association when present.
type UpdateListItemInput struct {
	ID        uuid.UUID  `json:"id"`
	ListID    *uuid.UUID `json:"list_id"`
	ItemID    *uuid.UUID `json:"item_id"`
	Quantity  *float64   `json:"quantity"`
	Completed *bool      `json:"completed"`
}

func (in *UpdateListItemInput) Validate() error {
	if in.ID == uuid.Nil {
		return apperrors.Validation("list item id is required")
	}
	if in.ListID != nil && *in.ListID == uuid.Nil {
		return apperrors.Validation("list_id must not be empty")
	}
	if in.ItemID != nil && *in.ItemID == uuid.Nil {
		return apperrors.Validation("item_id must not be empty")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return apperrors.Validation("quantity must not be negative")
	}
	return nil
}
