package models

import (
	"time"

	"gorm.io/gorm"
)

// Student statuses
const (
	StudentStatusActive      = "Active"
	StudentStatusInactive    = "Inactive"
	StudentStatusPassedOut   = "Passed Out"
	StudentStatusTransferred = "Transferred"
)

// Student enrolled student record
type Student struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	AdmissionNo   string         `json:"admission_no" gorm:"uniqueIndex;size:20;not null"`
	FirstName     string         `json:"first_name" gorm:"size:100;not null"`
	LastName      string         `json:"last_name" gorm:"size:100;not null"`
	Gender        string         `json:"gender" gorm:"size:10;not null"` // Male/Female/Other
	DateOfBirth   time.Time      `json:"date_of_birth" gorm:"not null"`
	Religion      string         `json:"religion" gorm:"size:50"`
	Category      string         `json:"category" gorm:"size:20;default:General"` // General/OBC/SC/ST/Other
	Phone         string         `json:"phone" gorm:"size:20"`
	Email         string         `json:"email" gorm:"size:100"`
	Address       string         `json:"address" gorm:"size:255"`
	FatherName    string         `json:"father_name" gorm:"size:100"`
	MotherName    string         `json:"mother_name" gorm:"size:100"`
	GuardianPhone string         `json:"guardian_phone" gorm:"size:20"`
	ClassID       *uint          `json:"class_id" gorm:"index"`
	Section       string         `json:"section" gorm:"size:10"`
	RollNumber    int            `json:"roll_number"`
	Session       string         `json:"session" gorm:"size:20;not null"`
	ProfileImage  string         `json:"profile_image" gorm:"size:255"`
	Status        string         `json:"status" gorm:"size:20;default:Active;index"`
	TotalFee      float64        `json:"total_fee" gorm:"type:decimal(10,2);default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
	Class         *SchoolClass   `json:"class,omitempty" gorm:"foreignKey:ClassID"`
}

// TableName sets the table name
func (Student) TableName() string {
	return "students"
}

// FullName first and last name joined
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
