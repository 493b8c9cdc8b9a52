package models

import (
	"time"

	"gorm.io/gorm"
)

// Notice types
const (
	NoticeTypeGeneral   = "General"
	NoticeTypeAcademic  = "Academic"
	NoticeTypeEvent     = "Event"
	NoticeTypeHoliday   = "Holiday"
	NoticeTypeExam      = "Exam"
	NoticeTypeFee       = "Fee"
	NoticeTypeImportant = "Important"
)

// Notice a published announcement
type Notice struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Image       string         `json:"image" gorm:"size:255"`
	NoticeType  string         `json:"notice_type" gorm:"size:20;default:General;index"`
	PublishDate time.Time      `json:"publish_date" gorm:"not null;index"`
	ExpiryDate  *time.Time     `json:"expiry_date"`
	IsPublic    bool           `json:"is_public" gorm:"default:true"`
	IsActive    bool           `json:"is_active" gorm:"default:true;index"`
	CreatedBy   *uint          `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name
func (Notice) TableName() string {
	return "notices"
}
