package models

// Sequence named counter backing the receipt and admission number
// allocators. Rows are bumped with an atomic UPDATE, never read-modify-write.
type Sequence struct {
	Name  string `json:"name" gorm:"primaryKey;size:50"`
	Value int64  `json:"value" gorm:"not null;default:0"`
}

// Sequence names
const (
	SequenceReceipt   = "fee_receipt"
	SequenceAdmission = "admission_no"
)

// TableName sets the table name
func (Sequence) TableName() string {
	return "sequences"
}
