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

// ItemsService is the owner-scoped repository for items.
type ItemsService struct {
	db *gorm.DB
}

func NewItemsService(db *gorm.DB) *ItemsService {
	return &ItemsService{db: db}
}

func (s *ItemsService) Create(input *dto.CreateItemInput, user *models.User) (*models.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item := models.Item{
		ID:       uuid.New(),
		Name:     input.Name,
		Quantity: input.Quantity,
		UserID:   user.ID,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return &item, nil
}

// FindAll returns the owner's items restricted to the requested page and,
// when a search term is present, filtered by a case-insensitive substring
// match on the name.
func (s *ItemsService) FindAll(user *models.User, pagination dto.PaginationArgs, search dto.SearchArgs) ([]models.Item, error) {
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

	var items []models.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return items, nil
}

func (s *ItemsService) FindOne(id uuid.UUID, user *models.User) (*models.Item, error) {
	var item models.Item
	err := s.db.Scopes(ownership.ForOwner(user.ID)).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("item with id %s not found", id)
	}
	if err != nil {
		return nil, s.handleDBError(err)
	}
	return &item, nil
}

// Update confirms ownership, re-reads the record and merges only the
// provided fields. The second read guards against the record vanishing
// between the ownership check and the merge.
func (s *ItemsService) Update(input *dto.UpdateItemInput, user *models.User) (*models.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.FindOne(input.ID, user); err != nil {
		return nil, err
	}

	var item models.Item
	err := s.db.First(&item, "id = ?", input.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("item with id %s not found", input.ID)
	}
	if err != nil {
		return nil, s.handleDBError(err)
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return &item, nil
}

// Remove hard-deletes the item and returns its pre-deletion snapshot.
func (s *ItemsService) Remove(id uuid.UUID, user *models.User) (*models.Item, error) {
	item, err := s.FindOne(id, user)
	if err != nil {
		return nil, err
	}

	snapshot := *item
	if err := s.db.Delete(item).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return &snapshot, nil
}

func (s *ItemsService) CountByUser(user *models.User) (int64, error) {
	var count int64
	err := s.db.Model(&models.Item{}).Scopes(ownership.ForOwner(user.ID)).Count(&count).Error
	if err != nil {
		return 0, s.handleDBError(err)
	}
	return count, nil
}

func (s *ItemsService) handleDBError(err error) error {
	appErr := apperrors.FromDB(err)
	if appErr.Kind == apperrors.KindInternal {
		slog.Error("items service storage failure", "error", err)
	}
	return appErr
}
