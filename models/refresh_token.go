package models

import (
	"time"

	"gorm.io/gorm"
)

type RefreshToken struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint           `gorm:"not null;index" json:"userId"`
	User           User           `gorm:"foreignKey:UserID" json:"-"`
	Token          string         `gorm:"not null;uniqueIndex" json:"token"`
	ExpirationDate time.Time      `gorm:"not null" json:"expiry"`
	CreatedAt      time.Time      `json:"createdAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
