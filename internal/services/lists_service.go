package services

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shoplist/backend/internal/apperrors"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/models"
	"github.com/shoplist/backend/internal/ownership"
	"gorm.io/gorm"
)

// ListsService is the owner-scoped repository for lists.
type ListsService struct {
	db *gorm.DB
}

func NewListsService(db *gorm.DB) *ListsService {
	return &ListsService{db: db}
}

func (s *ListsService) Create(input *dto.CreateListInput, user *models.User) (*models.List, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list := models.List{
		ID:     uuid.New(),
		Name:   input.Name,
		UserID: user.ID,
	}

	if err := s.db.Create(&list).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return &list, nil
}

func (s *ListsService) FindAll(user *models.User, pagination dto.PaginationArgs, search dto.SearchArgs) ([]models.List, error) {
	if err := pagination.Validate(); err != nil {
		return nil, err
	}

	query := s.db.
		Scopes(ownership.ForOwner(user.ID)).
		Offset(pagination.Offset()).
		Limit(pagination.Limit)

	if search.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search.Search)+"%")
	}

	var lists []models.List
	if err := query.Find(&lists).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return lists, nil
}

func (s *ListsService) FindOne(id uuid.UUID, user *models.User) (*models.List, error) {
	var list models.List
	err := s.db.Scopes(ownership.ForOwner(user.ID)).First(&list, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("list with id %s not found", id)
	}
	if err != nil {
		return nil, s.handleDBError(err)
	}
	return &list, nil
}

// Update confirms ownership, re-reads the record and merges only the
// provided fields. The second read guards against the record vanishing
// between the ownership check and the merge.
func (s *ListsService) Update(input *dto.UpdateListInput, user *models.User) (*models.List, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.FindOne(input.ID, user); err != nil {
		return nil, err
	}

	var list models.List
	err := s.db.First(&list, "id = ?", input.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("list with id %s not found", input.ID)
	}
	if err != nil {
		return nil, s.handleDBError(err)
	}

	if input.Name != nil {
		list.Name = *input.Name
	}

	if err := s.db.Save(&list).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return &list, nil
}

// Remove hard-deletes the list and returns its pre-deletion snapshot.
func (s *ListsService) Remove(id uuid.UUID, user *models.User) (*models.List, error) {
	list, err := s.FindOne(id, user)
	if err != nil {
		return nil, err
	}

	snapshot := *list
	if err := s.db.Delete(list).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return &snapshot, nil
}

func (s *ListsService) CountByUser(user *models.User) (int64, error) {
	var count int64
	err := s.db.Model(&models.List{}).Scopes(ownership.ForOwner(user.ID)).Count(&count).Error
	if err != nil {
		return 0, s.handleDBError(err)
	}
	return count, nil
}

func (s *ListsService) handleDBError(err error) error {
	appErr := apperrors.FromDB(err)
	if appErr.Kind == apperrors.KindInternal {
		slog.Error("lists service storage failure", "error", err)
	}
	return appErr
}
