package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered user
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Email         string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash  string         `gorm:"size:255;not null" json:"-"`
	WalletAddress *string        `gorm:"uniqueIndex;size:44" json:"wallet_address,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Trades []Trade `gorm:"foreignKey:UserID" json:"trades,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
