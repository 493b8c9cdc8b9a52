package models

import (
	"time"

	"gorm.io/gorm"
)

// Income categories
const (
	IncomeCategoryTuitionFee = "Tuition Fee"
	IncomeCategoryAdmission  = "Admission Fee"
	IncomeCategoryTransport  = "Transport"
	IncomeCategoryDonation   = "Donation"
	IncomeCategoryOther      = "Other"
)

// Income one cash inflow ledger entry. Entries posted by the payment
// reconciler carry the source fee in FeeID; manual entries leave it nil.
type Income struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Title         string         `json:"title" gorm:"size:255;not null"`
	Amount        float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Category      string         `json:"category" gorm:"size:50;not null;index"`
	Description   string         `json:"description" gorm:"size:255"`
	Date          time.Time      `json:"date" gorm:"not null;index"`
	PaymentMode   string         `json:"payment_mode" gorm:"size:20;default:Cash"`
	TransactionID string         `json:"transaction_id" gorm:"size:100"`
	FeeID         *uint          `json:"fee_id,omitempty" gorm:"index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name
func (Income) TableName() string {
	return "incomes"
}
