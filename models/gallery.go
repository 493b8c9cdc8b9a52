package models

import (
	"time"

	"gorm.io/gorm"
)

// Gallery categories
const (
	GalleryCategoryEvent    = "Event"
	GalleryCategorySports   = "Sports"
	GalleryCategoryAcademic = "Academic"
	GalleryCategoryCultural = "Cultural"
	GalleryCategoryOther    = "Other"
)

// Gallery one image shown on the public site
type Gallery struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"size:255"`
	Category    string         `json:"category" gorm:"size:20;default:Event;index"`
	ImageURL    string         `json:"image_url" gorm:"size:255;not null"`
	Date        time.Time      `json:"date"`
	IsActive    bool           `json:"is_active" gorm:"default:true;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name
func (Gallery) TableName() string {
	return "galleries"
}
