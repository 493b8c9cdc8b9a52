package models

import (
	"time"

	"gorm.io/gorm"
)

// Exam statuses
const (
	ExamStatusUpcoming  = "Upcoming"
	ExamStatusOngoing   = "Ongoing"
	ExamStatusCompleted = "Completed"
)

// ExamSubject one subject scheduled within an exam
type ExamSubject struct {
	Name     string     `json:"name"`
	Code     string     `json:"code"`
	Date     *time.Time `json:"date,omitempty"`
	MaxMarks float64    `json:"max_marks"`
}

// Exam a scheduled examination for a class
type Exam struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	ClassID   *uint          `json:"class_id" gorm:"index"`
	Session   string         `json:"session" gorm:"size:20;not null"`
	StartDate time.Time      `json:"start_date" gorm:"not null"`
	EndDate   time.Time      `json:"end_date" gorm:"not null"`
	Subjects  []ExamSubject  `json:"subjects" gorm:"serializer:json"`
	Status    string         `json:"status" gorm:"size:20;default:Upcoming;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Class     *SchoolClass   `json:"class,omitempty" gorm:"foreignKey:ClassID"`
}

// TableName sets the table name
func (Exam) TableName() string {
	return "exams"
}
