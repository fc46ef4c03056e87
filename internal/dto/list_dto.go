package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/apperrors"
)

type CreateListInput struct {
	Name string `json:"name"`
}

func (in *CreateListInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.Validation("list name must not be empty")
	}
	return nil
}

// UpdateListInput is a partial patch; nil fields are left untouched.
type UpdateListInput struct {
	ID   uuid.UUID `json:"id"`
	Name *string   `json:"name"`
}

func (in *UpdateListInput) Validate() error {
	if in.ID == uuid.Nil {
		return apperrors.Validation("list id is required")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return apperrors.Validation("list name must not be empty")
	}
	return nil
}
