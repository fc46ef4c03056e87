package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/apperrors"
	"github.com/shoplist/backend/internal/models"
)

// UpdateUserInput is the admin patch for a user record; nil fields are left
// untouched. A non-nil Password is re-hashed before persisting, and a non-nil
// empty Roles slice clears every role from the user.
type UpdateUserInput struct {
	ID       uuid.UUID `json:"id"`
	Email    *string   `json:"email"`
	FullName *string   `json:"full_name"`
	Password *string   `json:"password"`
	Roles    *[]string `json:"roles"`
	IsActive *bool     `json:"is_active"`
}

func (in *UpdateUserInput) Validate() error {
	if in.ID == uuid.Nil {
		return apperrors.Validation("user id is required")
	}
	if in.Email != nil && !emailRx.MatchString(*in.Email) {
		return apperrors.Validation("email must be a valid email address")
	}
	if in.FullName != nil && strings.TrimSpace(*in.FullName) == "" {
		return apperrors.Validation("full name must not be empty")
	}
	if in.Password != nil && len(*in.Password) < 6 {
		return apperrors.Validation("password must be at least 6 characters")
	}
	if in.Roles != nil {
		for _, r := range *in.Roles {
			if !models.IsValidRole(r) {
				return apperrors.Validation("unknown role %q", r)
			}
		}
	}
	return nil
}
