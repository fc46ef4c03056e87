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

// ListItemsService manages the associations between lists and items. Access
// is owner-transitive: every operation resolves the parent list (and any
// referenced item) through the acting user before touching the association.
// Removal is a soft delete; soft-deleted rows are excluded from every read.
type ListItemsService struct {
	db    *gorm.DB
	items *ItemsService
	lists *ListsService
}

func NewListItemsService(db *gorm.DB, items *ItemsService, lists *ListsService) *ListItemsService {
	return &ListItemsService{db: db, items: items, lists: lists}
}

// Create associates an item into a list. Both referenced ids must resolve to
// records owned by the acting user; a live duplicate of the (list, item)
// pair surfaces as a conflict.
func (s *ListItemsService) Create(input *dto.CreateListItemInput, user *models.User) (*models.ListItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.resolveList(input.ListID, user); err != nil {
		return nil, err
	}
	if _, err := s.resolveItem(input.ItemID, user); err != nil {
		return nil, err
	}

	listItem := models.ListItem{
		ID:        uuid.New(),
		Quantity:  input.Quantity,
		Completed: input.Completed,
		ListID:    input.ListID,
		ItemID:    input.ItemID,
	}

	if err := s.db.Create(&listItem).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return &listItem, nil
}

// FindAll returns the list's live associations restricted to the requested
// page; the search term matches the associated item's name.
func (s *ListItemsService) FindAll(list *models.List, pagination dto.PaginationArgs, search dto.SearchArgs) ([]models.ListItem, error) {
	if err := pagination.Validate(); err != nil {
		return nil, err
	}

	query := s.db.Model(&models.ListItem{}).
		Preload("Item").
		Scopes(ownership.ForList(list.ID)).
		Offset(pagination.Offset()).
		Limit(pagination.Limit)

	if search.Search != "" {
		query = query.
			Joins("LEFT JOIN items ON items.id = list_items.item_id").
			Where("LOWER(items.name) LIKE ?", "%"+strings.ToLower(search.Search)+"%")
	}

	var listItems []models.ListItem
	if err := query.Find(&listItems).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return listItems, nil
}

// FindOne loads a live association, scoped through the parent list's owner.
func (s *ListItemsService) FindOne(id uuid.UUID, user *models.User) (*models.ListItem, error) {
	var listItem models.ListItem
	err := s.db.
		Joins("JOIN lists ON lists.id = list_items.list_id AND lists.user_id = ?", user.ID).
		First(&listItem, "list_items.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("list item with id %s not found", id)
	}
	if err != nil {
		return nil, s.handleDBError(err)
	}
	return &listItem, nil
}

// Update merges the provided fields, re-pointing the association when list
// or item references are present. Moving onto a (list, item) pair already
// held by another live association surfaces as a conflict.
func (s *ListItemsService) Update(input *dto.UpdateListItemInput, user *models.User) (*models.ListItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	listItem, err := s.FindOne(input.ID, user)
	if err != nil {
		return nil, err
	}

	if input.ListID != nil {
		if _, err := s.resolveList(*input.ListID, user); err != nil {
			return nil, err
		}
		listItem.ListID = *input.ListID
	}
	if input.ItemID != nil {
		if _, err := s.resolveItem(*input.ItemID, user); err != nil {
			return nil, err
		}
		listItem.ItemID = *input.ItemID
	}
	if input.Quantity != nil {
		listItem.Quantity = *input.Quantity
	}
	if input.Completed != nil {
		listItem.Completed = *input.Completed
	}

	if err := s.db.Save(listItem).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return listItem, nil
}

// Remove soft-deletes the association and returns its pre-deletion snapshot.
// The row stays in storage with a deletion timestamp and never reappears in
// reads.
func (s *ListItemsService) Remove(id uuid.UUID, user *models.User) (*models.ListItem, error) {
	listItem, err := s.FindOne(id, user)
	if err != nil {
		return nil, err
	}

	snapshot := *listItem
	if err := s.db.Delete(listItem).Error; err != nil {
		return nil, s.handleDBError(err)
	}
	return &snapshot, nil
}

func (s *ListItemsService) CountByList(list *models.List) (int64, error) {
	var count int64
	err := s.db.Model(&models.ListItem{}).Scopes(ownership.ForList(list.ID)).Count(&count).Error
	if err != nil {
		return 0, s.handleDBError(err)
	}
	return count, nil
}

// resolveList maps a missing parent to a validation failure: the reference
// was supplied by the caller, so a dangling id is bad input, not a 404.
func (s *ListItemsService) resolveList(id uuid.UUID, user *models.User) (*models.List, error) {
	list, err := s.lists.FindOne(id, user)
	if apperrors.IsKind(err, apperrors.KindNotFound) {
		return nil, apperrors.Validation("list with id %s does not resolve", id)
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ListItemsService) resolveItem(id uuid.UUID, user *models.User) (*models.Item, error) {
	item, err := s.items.FindOne(id, user)
	if apperrors.IsKind(err, apperrors.KindNotFound) {
		return nil, apperrors.Validation("item with id %s does not resolve", id)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ListItemsService) handleDBError(err error) error {
	appErr := apperrors.FromDB(err)
	if appErr.Kind == apperrors.KindInternal {
		slog.Error("list items service storage failure", "error", err)
	}
	return appErr
}
