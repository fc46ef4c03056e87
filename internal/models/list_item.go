package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListItem links an Item into a List with per-association state. At most one
// live association may exist per (list, item) pair; the partial unique index
// ignores soft-deleted rows so the pair can be re-associated after removal.
type ListItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Quantity  float64        `gorm:"type:numeric;not null;default:0" json:"quantity"`
	Completed bool           `gorm:"not null;default:false" json:"completed"`
	ListID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_list_items_list_item,where:deleted_at IS NULL" json:"list_id"`
	List      *List          `gorm:"foreignKey:ListID" json:"-"`
	ItemID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_list_items_list_item" json:"item_id"`
	Item      *Item          `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
