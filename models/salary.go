package models

import (
	"time"

	"gorm.io/gorm"
)

// Salary statuses
const (
	SalaryStatusPending = "Pending"
	SalaryStatusPaid    = "Paid"
)

// Salary one salary payment made to a teacher for a month
type Salary struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	TeacherID     uint           `json:"teacher_id" gorm:"index;not null"`
	Month         string         `json:"month" gorm:"size:20;not null"`
	Year          int            `json:"year" gorm:"not null;index"`
	BasicSalary   float64        `json:"basic_salary" gorm:"type:decimal(10,2);not null"`
	Allowances    float64        `json:"allowances" gorm:"type:decimal(10,2);default:0"`
	Deductions    float64        `json:"deductions" gorm:"type:decimal(10,2);default:0"`
	NetSalary     float64        `json:"net_salary" gorm:"type:decimal(10,2);not null"`
	PaymentDate   *time.Time     `json:"payment_date"`
	PaymentMode   string         `json:"payment_mode" gorm:"size:20;default:Bank Transfer"`
	TransactionID string         `json:"transaction_id" gorm:"size:100"`
	Status        string         `json:"status" gorm:"size:20;default:Pending"`
	Remarks       string         `json:"remarks" gorm:"size:255"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
	Teacher       *Teacher       `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
}

// TableName sets the table name
func (Salary) TableName() string {
	return "salaries"
}
