package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Password      *string        `json:"-"`
	GoogleID      *string        `gorm:"unique" json:"-"`
	Provider      string         `gorm:"default:'email'" json:"provider"`
	AvatarURL     string         `json:"avatarUrl"`
	Bio           string         `gorm:"type:varchar(200)" json:"bio"`
	EmailVerified bool           `gorm:"default:false" json:"emailVerified"`
	Reviews       []Review       `gorm:"foreignKey:UserID" json:"-"`
	Reports       []Report       `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
