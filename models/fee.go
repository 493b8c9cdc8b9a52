package models

import (
	"time"

	"gorm.io/gorm"
)

// Fee statuses. Status is derived from paid amount vs payable, never set
// directly outside the payment path.
const (
	FeeStatusPending = "Pending"
	FeeStatusPartial = "Partial"
	FeeStatusPaid    = "Paid"
)

// Payment modes shared by fees, salaries and ledger entries
const (
	PaymentModeCash         = "Cash"
	PaymentModeCard         = "Card"
	PaymentModeBankTransfer = "Bank Transfer"
	PaymentModeUPI          = "UPI"
	PaymentModeCheque       = "Cheque"
)

// PaymentModes all accepted payment modes
func PaymentModes() []string {
	return []string{
		PaymentModeCash,
		PaymentModeCard,
		PaymentModeBankTransfer,
		PaymentModeUPI,
		PaymentModeCheque,
	}
}

// IsValidPaymentMode reports whether mode is one of the accepted values
func IsValidPaymentMode(mode string) bool {
	for _, m := range PaymentModes() {
		if m == mode {
			return true
		}
	}
	return false
}

// Fee one billable charge for a student for a given month and fee type
type Fee struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	StudentID     uint           `json:"student_id" gorm:"index;not null"`
	ClassID       *uint          `json:"class_id" gorm:"index"`
	FeeType       string         `json:"fee_type" gorm:"size:50;not null"`
	Amount        float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	PaidAmount    float64        `json:"paid_amount" gorm:"type:decimal(10,2);default:0"`
	Discount      float64        `json:"discount" gorm:"type:decimal(10,2);default:0"`
	Fine          float64        `json:"fine" gorm:"type:decimal(10,2);default:0"`
	Month         string         `json:"month" gorm:"size:20;not null;index"`
	Year          int            `json:"year" gorm:"not null;index"`
	PaymentDate   *time.Time     `json:"payment_date"`
	PaymentMode   string         `json:"payment_mode" gorm:"size:20"`
	TransactionID string         `json:"transaction_id" gorm:"size:100"`
	ReceiptNumber string         `json:"receipt_number" gorm:"uniqueIndex;size:20"`
	Status        string         `json:"status" gorm:"size:20;default:Pending;index"`
	Notes         string         `json:"notes" gorm:"size:255"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
	Student       *Student       `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Class         *SchoolClass   `json:"class,omitempty" gorm:"foreignKey:ClassID"`
}

// TableName sets the table name
func (Fee) TableName() string {
	return "fees"
}

// Payable total owed: amount + fine - discount
func (f *Fee) Payable() float64 {
	return f.Amount + f.Fine - f.Discount
}

// StatusFor derives the fee status for a cumulative paid amount.
// Paid once paid covers the payable total, Partial for anything in
// between, Pending when nothing has been paid.
func (f *Fee) StatusFor(paid float64) string {
	switch {
	case paid >= f.Payable():
		return FeeStatusPaid
	case paid > 0:
		return FeeStatusPartial
	default:
		return FeeStatusPending
	}
}
