package models

import (
	"time"

	"gorm.io/gorm"
)

// Admission statuses
const (
	AdmissionStatusPending  = "Pending"
	AdmissionStatusReviewed = "Reviewed"
	AdmissionStatusApproved = "Approved"
	AdmissionStatusRejected = "Rejected"
)

// Admission an admission enquiry submitted through the public site
type Admission struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	FirstName        string         `json:"first_name" gorm:"size:100;not null"`
	LastName         string         `json:"last_name" gorm:"size:100;not null"`
	Gender           string         `json:"gender" gorm:"size:10;not null"`
	DateOfBirth      time.Time      `json:"date_of_birth" gorm:"not null"`
	Religion         string         `json:"religion" gorm:"size:50"`
	Category         string         `json:"category" gorm:"size:20;default:General"`
	Phone            string         `json:"phone" gorm:"size:20;not null"`
	Email            string         `json:"email" gorm:"size:100"`
	Address          string         `json:"address" gorm:"size:255;not null"`
	FatherName       string         `json:"father_name" gorm:"size:100;not null"`
	MotherName       string         `json:"mother_name" gorm:"size:100"`
	FatherOccupation string         `json:"father_occupation" gorm:"size:100"`
	GuardianPhone    string         `json:"guardian_phone" gorm:"size:20"`
	PreviousSchool   string         `json:"previous_school" gorm:"size:255"`
	Class            string         `json:"class" gorm:"size:50;not null"`
	Status           string         `json:"status" gorm:"size:20;default:Pending;index"`
	Remarks          string         `json:"remarks" gorm:"size:255"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name
func (Admission) TableName() string {
	return "admissions"
}
