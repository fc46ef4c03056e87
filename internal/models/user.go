package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// User owns Items and Lists. The password column only ever holds a bcrypt
// hash and is never serialized.
type User struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email           string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FullName        string         `gorm:"size:255;not null" json:"full_name"`
	Password        string         `gorm:"not null" json:"-"`
	Roles           pq.StringArray `gorm:"type:text[];not null;default:'{user}'" json:"roles"`
	IsActive        bool           `gorm:"not null;default:true" json:"is_active"`
	LastUpdatedByID *uuid.UUID     `gorm:"type:uuid" json:"-"`
	LastUpdatedBy   *User          `gorm:"foreignKey:LastUpdatedByID" json:"last_updated_by,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
