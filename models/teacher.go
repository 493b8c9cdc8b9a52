package models

import (
	"time"

	"gorm.io/gorm"
)

// Teacher statuses
const (
	TeacherStatusActive   = "Active"
	TeacherStatusInactive = "Inactive"
	TeacherStatusRetired  = "Retired"
	TeacherStatusResigned = "Resigned"
)

// Teacher staff member record
type Teacher struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	EmployeeID    string         `json:"employee_id" gorm:"uniqueIndex;size:20;not null"`
	FirstName     string         `json:"first_name" gorm:"size:100;not null"`
	LastName      string         `json:"last_name" gorm:"size:100;not null"`
	Gender        string         `json:"gender" gorm:"size:10;not null"`
	DateOfBirth   time.Time      `json:"date_of_birth" gorm:"not null"`
	Qualification string         `json:"qualification" gorm:"size:100"`
	Experience    string         `json:"experience" gorm:"size:100"`
	Subject       string         `json:"subject" gorm:"size:100"`
	Phone         string         `json:"phone" gorm:"size:20"`
	Email         string         `json:"email" gorm:"size:100"`
	Address       string         `json:"address" gorm:"size:255"`
	Salary        float64        `json:"salary" gorm:"type:decimal(10,2);default:0"`
	JoiningDate   time.Time      `json:"joining_date"`
	ProfileImage  string         `json:"profile_image" gorm:"size:255"`
	Status        string         `json:"status" gorm:"size:20;default:Active;index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name
func (Teacher) TableName() string {
	return "teachers"
}

// FullName first and last name joined
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
