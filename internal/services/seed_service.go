package services

import (
	"math/rand"

	"github.com/lib/pq"
	"github.com/shoplist/backend/internal/apperrors"
	"github.com/shoplist/backend/internal/config"
	"github.com/shoplist/backend/internal/dto"
	"github.com/shoplist/backend/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// seedItemPageSize is how many of the first user's items get associated into
// the first list.
const seedItemPageSize = 15

// SeedService wipes the managed tables and reloads deterministic fixture
// data. It drives the repositories directly and bypasses authorization.
type SeedService struct {
	db        *gorm.DB
	isProd    bool
	users     *UsersService
	items     *ItemsService
	lists     *ListsService
	listItems *ListItemsService
}

func NewSeedService(db *gorm.DB, cfg *config.Config, users *UsersService, items *ItemsService, lists *ListsService, listItems *ListItemsService) *SeedService {
	return &SeedService{
		db:        db,
		isProd:    cfg.IsProd(),
		users:     users,
		items:     items,
		lists:     lists,
		listItems: listItems,
	}
}

// ExecuteSeed replaces the whole dataset: wipe child-to-parent, then reload
// users, the first user's items and lists, and associate the first page of
// items into the first list. Refused outright in production.
func (s *SeedService) ExecuteSeed() (bool, error) {
	if s.isProd {
		return false, apperrors.Authorization("seed cannot run on prod")
	}

	if err := s.deleteDatabase(); err != nil {
		return false, err
	}

	users, err := s.loadUsers()
	if err != nil {
		return false, err
	}
	owner := users[0]

	if err := s.loadItems(owner); err != nil {
		return false, err
	}

	lists, err := s.loadLists(owner)
	if err != nil {
		return false, err
	}

	if err := s.loadListItems(lists[0], owner); err != nil {
		return false, err
	}

	return true, nil
}

// deleteDatabase wipes every managed table in strict child-to-parent order.
// Unscoped clears soft-deleted list items as well.
func (s *SeedService) deleteDatabase() error {
	for _, model := range []any{
		&models.ListItem{},
		&models.List{},
		&models.Item{},
		&models.User{},
	} {
		err := s.db.Unscoped().
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(model).Error
		if err != nil {
			return apperrors.Internal(err)
		}
	}
	return nil
}

func (s *SeedService) loadUsers() ([]*models.User, error) {
	users := make([]*models.User, len(seedUsers))

	g := new(errgroup.Group)
	for i, su := range seedUsers {
		g.Go(func() error {
			user, err := s.users.Create(&dto.SignupInput{
				Email:    su.Email,
				FullName: su.FullName,
				Password: su.Password,
			})
			if err != nil {
				return err
			}

			if len(su.Roles) > 0 {
				roles := make(pq.StringArray, 0, len(su.Roles))
				for _, r := range su.Roles {
					roles = append(roles, string(r))
				}
				if err := s.db.Model(user).Update("roles", roles).Error; err != nil {
					return apperrors.Internal(err)
				}
				user.Roles = roles
			}

			users[i] = user
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SeedService) loadItems(owner *models.User) error {
	g := new(errgroup.Group)
	for _, si := range seedItems {
		g.Go(func() error {
			_, err := s.items.Create(&dto.CreateItemInput{
				Name:     si.Name,
				Quantity: si.Quantity,
			}, owner)
			return err
		})
	}
	return g.Wait()
}

func (s *SeedService) loadLists(owner *models.User) ([]*models.List, error) {
	lists := make([]*models.List, len(seedLists))

	g := new(errgroup.Group)
	for i, name := range seedLists {
		g.Go(func() error {
			list, err := s.lists.Create(&dto.CreateListInput{Name: name}, owner)
			if err != nil {
				return err
			}
			lists[i] = list
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}

func (s *SeedService) loadListItems(list *models.List, owner *models.User) error {
	items, err := s.items.FindAll(owner, dto.PaginationArgs{Page: 1, Limit: seedItemPageSize}, dto.SearchArgs{})
	if err != nil {
		return err
	}

	g := new(errgroup.Group)
	for _, item := range items {
		g.Go(func() error {
			_, err := s.listItems.Create(&dto.CreateListItemInput{
				ListID:    list.ID,
				ItemID:    item.ID,
				Quantity:  float64(rand.Intn(11)),
				Completed: rand.Intn(2) == 0,
			}, owner)
			return err
		})
	}
	return g.Wait()
}
