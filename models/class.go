package models

import (
	"time"

	"gorm.io/gorm"
)

// ClassSubject one subject taught in a class
type ClassSubject struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// SchoolClass class with a section and an assigned class teacher
type SchoolClass struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:50;not null;uniqueIndex:idx_class_section"`
	Section   string         `json:"section" gorm:"size:10;not null;uniqueIndex:idx_class_section"`
	TeacherID *uint          `json:"teacher_id" gorm:"index"`
	Subjects  []ClassSubject `json:"subjects" gorm:"serializer:json"`
	Session   string         `json:"session" gorm:"size:20;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Teacher   *Teacher       `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
}

// TableName sets the table name
func (SchoolClass) TableName() string {
	return "classes"
}
