package service

import (
	"errors"
	"fmt"
	"time"

	"schoolms/config"
	"schoolms/models"

	"gorm.io/gorm"
)

// Ledger errors
var (
	ErrFeeNotFound     = errors.New("fee record not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrInvalidAmount   = errors.New("payment amount must be positive")
)

// PaymentInput one payment applied to a fee record
type PaymentInput struct {
	PaidAmount    float64
	PaymentMode   string
	TransactionID string
	PaymentDate   *time.Time
}

// SalaryInput one salary payment for a teacher
type SalaryInput struct {
	Amount        float64
	Month         string
	Year          int
	Allowances    float64
	Deductions    float64
	PaymentMode   string
	TransactionID string
	PaymentDate   *time.Time
	Remarks       string
}

// LedgerService applies payments to fee records, pays salaries, and keeps
// the income/expense ledgers in sync. Every cross-entity write pair runs in
// one transaction so a fee update can never land without its ledger entry.
type LedgerService struct {
	db              *gorm.DB
	receiptPrefix   string
	admissionPrefix string
}

// NewLedgerService creates a ledger service on the given database handle
func NewLedgerService(db *gorm.DB) *LedgerService {
	receiptPrefix := "RCP"
	admissionPrefix := "STJ"
	if config.GlobalConfig != nil {
		if p := config.GlobalConfig.School.ReceiptPrefix; p != "" {
			receiptPrefix = p
		}
		if p := config.GlobalConfig.School.AdmissionPrefix; p != "" {
			admissionPrefix = p
		}
	}
	return &LedgerService{
		db:              db,
		receiptPrefix:   receiptPrefix,
		admissionPrefix: admissionPrefix,
	}
}

// CreateFee persists a new fee record, allocating its receipt number from
// the atomic sequence in the same transaction. Status is derived, never
// taken from the input.
func (s *LedgerService) CreateFee(fee *models.Fee) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&models.Student{}).Where("id = ?", fee.StudentID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return ErrStudentNotFound
		}
		receipt, err := NextNumber(tx, models.SequenceReceipt, s.receiptPrefix, 5)
		if err != nil {
			return err
		}
		fee.ReceiptNumber = receipt
		fee.Status = fee.StatusFor(fee.PaidAmount)
		return tx.Create(fee).Error
	})
}

// CreateStudent persists a new student, allocating the admission number
// (e.g. STJ001) inside the same transaction so a failed insert never
// burns a number.
func (s *LedgerService) CreateStudent(student *models.Student) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		no, err := NextNumber(tx, models.SequenceAdmission, s.admissionPrefix, 3)
		if err != nil {
			return err
		}
		student.AdmissionNo = no
		return tx.Create(student).Error
	})
}

// PeekAdmissionNo returns the admission number the next registration will
// receive, without consuming it
func (s *LedgerService) PeekAdmissionNo() (string, error) {
	return PeekNumber(s.db, models.SequenceAdmission, s.admissionPrefix, 3)
}

// ApplyPayment applies in.PaidAmount to the fee record and posts one income
// ledger entry for the increment, all in one transaction. The paid amount
// is bumped with an atomic UPDATE, not read-modify-write, so concurrent
// payments against the same fee cannot lose updates. Overpayment is
// accepted and recorded as-is.
func (s *LedgerService) ApplyPayment(feeID uint, in PaymentInput) (*models.Fee, error) {
	if in.PaidAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	var fee models.Fee
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fee, feeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFeeNotFound
			}
			return err
		}
		var student models.Student
		if err := tx.First(&student, fee.StudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		if err := tx.Model(&models.Fee{}).Where("id = ?", feeID).
			UpdateColumn("paid_amount", gorm.Expr("paid_amount + ?", in.PaidAmount)).Error; err != nil {
			return err
		}
		// re-read the authoritative cumulative amount before deriving status
		if err := tx.First(&fee, feeID).Error; err != nil {
			return err
		}

		payDate := time.Now()
		if in.PaymentDate != nil {
			payDate = *in.PaymentDate
		}
		updates := map[string]interface{}{
			"status":       fee.StatusFor(fee.PaidAmount),
			"payment_date": payDate,
		}
		if in.PaymentMode != "" {
			updates["payment_mode"] = in.PaymentMode
		}
		if in.TransactionID != "" {
			updates["transaction_id"] = in.TransactionID
		}
		if err := tx.Model(&models.Fee{}).Where("id = ?", feeID).Updates(updates).Error; err != nil {
			return err
		}
		fee.Status = fee.StatusFor(fee.PaidAmount)
		fee.PaymentDate = &payDate
		if in.PaymentMode != "" {
			fee.PaymentMode = in.PaymentMode
		}
		if in.TransactionID != "" {
			fee.TransactionID = in.TransactionID
		}

		mode := in.PaymentMode
		if mode == "" {
			mode = models.PaymentModeCash
		}
		income := models.Income{
			Title:         fmt.Sprintf("Fee Payment - %s (%s %d)", student.FullName(), fee.Month, fee.Year),
			Amount:        in.PaidAmount,
			Category:      models.IncomeCategoryTuitionFee,
			Description:   fmt.Sprintf("Receipt No: %s", fee.ReceiptNumber),
			Date:          payDate,
			PaymentMode:   mode,
			TransactionID: in.TransactionID,
			FeeID:         &fee.ID,
		}
		return tx.Create(&income).Error
	})
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// PaySalary records a salary payment for a teacher and posts the mirrored
// expense ledger entry in the same transaction
func (s *LedgerService) PaySalary(teacherID uint, in SalaryInput) (*models.Salary, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	var salary models.Salary
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var teacher models.Teacher
		if err := tx.First(&teacher, teacherID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeacherNotFound
			}
			return err
		}

		net := in.Amount + in.Allowances - in.Deductions
		payDate := time.Now()
		if in.PaymentDate != nil {
			payDate = *in.PaymentDate
		}
		mode := in.PaymentMode
		if mode == "" {
			mode = models.PaymentModeCash
		}

		salary = models.Salary{
			TeacherID:     teacherID,
			Month:         in.Month,
			Year:          in.Year,
			BasicSalary:   in.Amount,
			Allowances:    in.Allowances,
			Deductions:    in.Deductions,
			NetSalary:     net,
			PaymentDate:   &payDate,
			PaymentMode:   mode,
			TransactionID: in.TransactionID,
			Status:        models.SalaryStatusPaid,
			Remarks:       in.Remarks,
		}
		if err := tx.Create(&salary).Error; err != nil {
			return err
		}

		expense := models.Expense{
			Title:       fmt.Sprintf("Salary Payment - %s (%s %d)", teacher.FullName(), in.Month, in.Year),
			Amount:      net,
			Category:    models.ExpenseCategoryStaffSalary,
			Description: fmt.Sprintf("Employee ID: %s, Mode: %s", teacher.EmployeeID, mode),
			Date:        payDate,
			PaymentMode: mode,
			Vendor:      teacher.FullName(),
			SalaryID:    &salary.ID,
		}
		return tx.Create(&expense).Error
	})
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

// UnpostedPayments returns fee records whose cumulative paid amount exceeds
// the summed income entries linked to them. A non-empty result means the
// ledgers drifted (rows edited outside the payment path) and need repair.
func (s *LedgerService) UnpostedPayments() ([]models.Fee, error) {
	var fees []models.Fee
	err := s.db.Raw(`
		SELECT fees.* FROM fees
		LEFT JOIN (
			SELECT fee_id, SUM(amount) AS posted
			FROM incomes
			WHERE fee_id IS NOT NULL AND deleted_at IS NULL
			GROUP BY fee_id
		) i ON i.fee_id = fees.id
		WHERE fees.deleted_at IS NULL
		  AND fees.paid_amount > COALESCE(i.posted, 0)`).
		Scan(&fees).Error
	return fees, err
}
