package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered shopper. The id is generated by the application at
// registration time and never changes; users are never updated or deleted
// through the API.
type User struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email          string    `gorm:"column:email;type:text;not null;uniqueIndex"`
	FullName       string    `gorm:"column:full_name;not null"`
	HashedPassword string    `gorm:"column:hashed_password;not null"`
	IsActive       bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}
