package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense categories
const (
	ExpenseCategoryStaffSalary = "Staff Salary"
	ExpenseCategoryMaintenance = "Maintenance"
	ExpenseCategoryUtilities   = "Utilities"
	ExpenseCategoryStationery  = "Stationery"
	ExpenseCategoryTransport   = "Transport"
	ExpenseCategoryOther       = "Other"
)

// Expense one cash outflow ledger entry. Entries posted by the salary
// payment path carry the source salary in SalaryID; manual entries leave
// it nil.
type Expense struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Amount      float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Category    string         `json:"category" gorm:"size:50;not null;index"`
	Description string         `json:"description" gorm:"size:255"`
	Date        time.Time      `json:"date" gorm:"not null;index"`
	PaymentMode string         `json:"payment_mode" gorm:"size:20;default:Cash"`
	Vendor      string         `json:"vendor" gorm:"size:100"`
	SalaryID    *uint          `json:"salary_id,omitempty" gorm:"index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name
func (Expense) TableName() string {
	return "expenses"
}
