package services

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shoplist/backend/internal/apperrors"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// UsersService is the credential store: it owns password hashing and every
// read/write on user records.
type UsersService struct {
	db *gorm.DB
}

func NewUsersService(db *gorm.DB) *UsersService {
	return &UsersService{db: db}
}

// Create validates the signup input, hashes the password and persists a new
// active user with the default role.
func (s *UsersService) Create(input *dto.SignupInput) (*models.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    input.Email,
		FullName: input.FullName,
		Password: string(hash),
		Roles:    pq.StringArray{string(models.RoleUser)},
		IsActive: true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return &user, nil
}

// FindAll returns every user when roles is empty, otherwise the users whose
// role set intersects the requested roles. Both branches resolve the last
// updater so the response shape does not depend on the filter.
func (s *UsersService) FindAll(roles []models.Role) ([]models.User, error) {
	var users []models.User

	if len(roles) == 0 {
		if err := s.db.Preload("LastUpdatedBy").Find(&users).Error; err != nil {
			return nil, s.handleDBError(err)
		}
		return users, nil
	}

	wanted := make(pq.StringArray, 0, len(roles))
	for _, r := range roles {
		wanted = append(wanted, string(r))
	}

	err := s.db.Preload("LastUpdatedBy").
		Where("roles && ?", wanted).
		Find(&users).Error
	if err != nil {
		return nil, s.handleDBError(err)
	}
	return users, nil
}

func (s *UsersService) FindOneByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("user with id %s not found", id)
	}
	if err != nil {
		return nil, s.handleDBError(err)
	}
	return &user, nil
}

func (s *UsersService) FindOneByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("%s not found", email)
	}
	if err != nil {
		return nil, s.handleDBError(err)
	}
	return &user, nil
}

// Update merges the provided fields into the stored record and stamps the
// acting admin as last updater.
func (s *UsersService) Update(id uuid.UUID, input *dto.UpdateUserInput, updatedBy *models.User) (*models.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.FindOneByID(id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		user.Password = string(hash)
	}
	if input.Roles != nil {
		user.Roles = pq.StringArray(*input.Roles)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	user.LastUpdatedByID = &updatedBy.ID

	if err := s.db.Save(user).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return user, nil
}

// Block deactivates a user account. Blocking an already-blocked user is a
// no-op that still succeeds.
func (s *UsersService) Block(id uuid.UUID, adminUser *models.User) (*models.User, error) {
	user, err := s.FindOneByID(id)
	if err != nil {
		return nil, err
	}

	user.IsActive = false
	user.LastUpdatedByID = &adminUser.ID

	if err := s.db.Save(user).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return user, nil
}

func (s *UsersService) handleDBError(err error) error {
	appErr := apperrors.FromDB(err)
	if appErr.Kind == apperrors.KindInternal {
		slog.Error("users service storage failure", "error", err)
	}
	return appErr
}
