package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 assigned by the application.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Picture       *string   `gorm:"type:text"`
	OAuthProvider string    `gorm:"column:oauth_provider;type:varchar(50);not null"`
	OAuthID       string    `gorm:"column:oauth_id;type:varchar(255);not null"`
	CreatedAt     time.Time `gorm:"not null"`
	LastLogin     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
