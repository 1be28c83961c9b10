package models

import (
	"time"

	"github.com/polyforma/qualitrack/internal/shared/constants"
)

// UserModel mirrors the identity provider's users for notification lookups.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:150;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex:uk_users_email"`
	Role      string `gorm:"size:30;not null;index"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
