package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/apperrors"
	"github.com/shoplist/backend/internal/config"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// TokenClaims is the signed payload of a bearer token. The user id travels
// in the custom "id" claim.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// AuthService issues and resolves bearer tokens on top of the credential
// store.
type AuthService struct {
	users *UsersService
	cfg   *config.Config
}

func NewAuthService(users *UsersService, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Signup registers a new user and returns it together with a fresh token.
func (s *AuthService) Signup(input *dto.SignupInput) (*dto.AuthResponse, error) {
	user, err := s.users.Create(input)
	if err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &dto.AuthResponse{Token: token, User: user}, nil
}

// Login verifies the credentials and returns the user with a fresh token.
func (s *AuthService) Login(input *dto.LoginInput) (*dto.AuthResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.FindOneByEmail(input.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, apperrors.Authentication("email/password do not match")
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &dto.AuthResponse{Token: token, User: user}, nil
}

// ValidateUser resolves a decoded token id to an active user. The returned
// user never carries the password hash.
func (s *AuthService) ValidateUser(id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindOneByID(id)
	if err != nil {
		return nil, apperrors.Authentication("invalid credentials")
	}

	if !user.IsActive {
		return nil, apperrors.Authorization("user is inactive, talk with an admin")
	}

	user.Password = ""
	return user, nil
}

// RevalidateToken issues a fresh token for an already-authenticated user.
func (s *AuthService) RevalidateToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: user}, nil
}

// GenerateToken signs a bearer token carrying the user id, valid for the
// configured window from now.
func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		UserID: userID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return signed, nil
}

// DecodeToken parses a token without verifying its signature or expiry and
// returns nil for structurally malformed input. Verification happens in the
// request middleware.
func (s *AuthService) DecodeToken(raw string) *TokenClaims {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil
	}
	return claims
}
