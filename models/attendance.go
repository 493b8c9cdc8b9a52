package models

import (
	"time"

	"gorm.io/gorm"
)

// Attendance statuses
const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusAbsent  = "Absent"
	AttendanceStatusLate    = "Late"
	AttendanceStatusHalfDay = "Half Day"
	AttendanceStatusHoliday = "Holiday"
)

// Attendance one attendance mark, at most one per student per day
type Attendance struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	StudentID uint           `json:"student_id" gorm:"not null;uniqueIndex:idx_attendance_student_date"`
	ClassID   *uint          `json:"class_id" gorm:"index"`
	Date      time.Time      `json:"date" gorm:"type:date;not null;uniqueIndex:idx_attendance_student_date;index"`
	Status    string         `json:"status" gorm:"size:20;not null"`
	Remarks   string         `json:"remarks" gorm:"size:255"`
	MarkedBy  *uint          `json:"marked_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Student   *Student       `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}

// TableName sets the table name
func (Attendance) TableName() string {
	return "attendances"
}
