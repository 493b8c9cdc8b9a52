package models

import (
	"time"

	"gorm.io/gorm"
)

// Result statuses
const (
	ResultStatusPass = "Pass"
	ResultStatusFail = "Fail"
)

// PassPercentage minimum percentage to pass a subject or an exam
const PassPercentage = 40.0

// SubjectMark marks obtained in one subject
type SubjectMark struct {
	Subject     string  `json:"subject"`
	SubjectCode string  `json:"subject_code"`
	Marks       float64 `json:"marks"`
	MaxMarks    float64 `json:"max_marks"`
	Grade       string  `json:"grade"`
}

// Result a student's marks for one exam
type Result struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	StudentID     uint           `json:"student_id" gorm:"not null;index"`
	ExamID        uint           `json:"exam_id" gorm:"not null;index"`
	ClassID       *uint          `json:"class_id" gorm:"index"`
	Marks         []SubjectMark  `json:"marks" gorm:"serializer:json"`
	TotalMarks    float64        `json:"total_marks" gorm:"type:decimal(10,2);default:0"`
	ObtainedMarks float64        `json:"obtained_marks" gorm:"type:decimal(10,2);default:0"`
	Percentage    float64        `json:"percentage" gorm:"type:decimal(5,2);default:0"`
	Grade         string         `json:"grade" gorm:"size:5"`
	Rank          int            `json:"rank"`
	Status        string         `json:"status" gorm:"size:10;default:Pass"`
	Remarks       string         `json:"remarks" gorm:"size:255"`
	Session       string         `json:"session" gorm:"size:20;not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
	Student       *Student       `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Exam          *Exam          `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
}

// TableName sets the table name
func (Result) TableName() string {
	return "results"
}

// GradeFor letter grade for a percentage
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C"
	case percentage >= PassPercentage:
		return "D"
	default:
		return "F"
	}
}

// Compute fills per-subject grades, totals, percentage, final grade and
// pass/fail status from the raw marks
func (r *Result) Compute() {
	var total, obtained float64
	for i := range r.Marks {
		m := &r.Marks[i]
		if m.MaxMarks > 0 {
			m.Grade = GradeFor(m.Marks / m.MaxMarks * 100)
		} else {
			m.Grade = "F"
		}
		total += m.MaxMarks
		obtained += m.Marks
	}
	r.TotalMarks = total
	r.ObtainedMarks = obtained
	if total > 0 {
		r.Percentage = obtained / total * 100
	} else {
		r.Percentage = 0
	}
	r.Grade = GradeFor(r.Percentage)
	if r.Percentage >= PassPercentage {
		r.Status = ResultStatusPass
	} else {
		r.Status = ResultStatusFail
	}
}
