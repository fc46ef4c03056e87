package dto

import (
	"regexp"
	"strings"

	"github.com/shoplist/backend/internal/apperrors"
	"github.com/shoplist/backend/internal/models"
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SignupInput struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

func (in *SignupInput) Validate() error {
	if !emailRx.MatchString(in.Email) {
		return apperrors.Validation("email must be a valid email address")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return apperrors.Validation("full name must not be empty")
	}
	if len(in.Password) < 6 {
		return apperrors.Validation("password must be at least 6 characters")
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) Validate() error {
	if !emailRx.MatchString(in.Email) {
		return apperrors.Validation("email must be a valid email address")
	}
	if in.Password == "" {
		return apperrors.Validation("password must not be empty")
	}
	return nil
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
