package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Review struct {
	ID         uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	ToiletID   uint           `json:"toiletId" gorm:"not null;index"`
	Toilet     Toilet         `json:"-" gorm:"foreignKey:ToiletID"`
	UserID     uint           `json:"userId" gorm:"not null;index"`
	User       User           `json:"user" gorm:"foreignKey:UserID"`
	Rating     int            `json:"rating" gorm:"not null;check:rating between 1 and 5"`
	ReviewText string         `json:"reviewText" gorm:"type:varchar(1000)"`
	Images     pq.StringArray `json:"images" gorm:"type:text[]"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
