package models

import (
	"time"

	"gorm.io/gorm"
)

// Report status lifecycle: pending -> reviewed -> resolved/dismissed.
const (
	ReportPending   = "PENDING"
	ReportReviewed  = "REVIEWED"
	ReportResolved  = "RESOLVED"
	ReportDismissed = "DISMISSED"
)

type Report struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	ToiletID  uint           `json:"toiletId" gorm:"not null;index"`
	Toilet    Toilet         `json:"-" gorm:"foreignKey:ToiletID"`
	UserID    uint           `json:"userId" gorm:"not null;index"`
	User      User           `json:"user" gorm:"foreignKey:UserID"`
	IssueText string         `json:"issueText" gorm:"not null;type:varchar(500)"`
	Status    string         `json:"status" gorm:"not null;default:'PENDING';index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
