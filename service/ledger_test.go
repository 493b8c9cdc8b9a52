package service

import (
	"errors"
	"testing"
	"time"

	"schoolms/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() { sqlDB.Close() }
}

func newTestLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db, receiptPrefix: "RCP", admissionPrefix: "STJ"}
}

func feeRows(id uint, amount, paid, discount, fine float64, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "student_id", "fee_type", "amount", "paid_amount",
		"discount", "fine", "month", "year", "receipt_number", "status",
	}).AddRow(id, 1, "Tuition", amount, paid, discount, fine, "January", 2024, "RCP00001", status)
}

func studentRows(id uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "admission_no", "first_name", "last_name"}).
		AddRow(id, "STJ001", "Ravi", "Kumar")
}

func TestLedgerService_ApplyPayment(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `fees`").
		WillReturnRows(feeRows(1, 1000, 0, 0, 0, models.FeeStatusPending))
	mock.ExpectQuery("SELECT .* FROM `students`").
		WillReturnRows(studentRows(1))
	mock.ExpectExec("UPDATE `fees` SET `paid_amount`=paid_amount").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `fees`").
		WillReturnRows(feeRows(1, 1000, 400, 0, 0, models.FeeStatusPending))
	mock.ExpectExec("UPDATE `fees`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	s := newTestLedgerService(db)
	fee, err := s.ApplyPayment(1, PaymentInput{PaidAmount: 400, PaymentMode: models.PaymentModeCash})
	require.NoError(t, err)

	// 400 of 1000 leaves a partial fee
	assert.Equal(t, 400.0, fee.PaidAmount)
	assert.Equal(t, models.FeeStatusPartial, fee.Status)
	assert.NotNil(t, fee.PaymentDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_ApplyPayment_CompletesFee(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	// second installment covers amount + fine - discount exactly
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `fees`").
		WillReturnRows(feeRows(1, 1000, 400, 100, 50, models.FeeStatusPartial))
	mock.ExpectQuery("SELECT .* FROM `students`").
		WillReturnRows(studentRows(1))
	mock.ExpectExec("UPDATE `fees` SET `paid_amount`=paid_amount").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `fees`").
		WillReturnRows(feeRows(1, 1000, 950, 100, 50, models.FeeStatusPartial))
	mock.ExpectExec("UPDATE `fees`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	s := newTestLedgerService(db)
	fee, err := s.ApplyPayment(1, PaymentInput{PaidAmount: 550, PaymentMode: models.PaymentModeUPI})
	require.NoError(t, err)

	assert.Equal(t, models.FeeStatusPaid, fee.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_ApplyPayment_InvalidAmount(t *testing.T) {
	db, _, cleanup := newMockDB(t)
	defer cleanup()

	s := newTestLedgerService(db)

	_, err := s.ApplyPayment(1, PaymentInput{PaidAmount: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = s.ApplyPayment(1, PaymentInput{PaidAmount: -100})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLedgerService_ApplyPayment_FeeNotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `fees`").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectRollback()

	s := newTestLedgerService(db)
	_, err := s.ApplyPayment(99, PaymentInput{PaidAmount: 100})
	assert.ErrorIs(t, err, ErrFeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_PaySalary(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `teachers`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "first_name", "last_name"}).
			AddRow(1, "EMP001", "Sunita", "Sharma"))
	mock.ExpectExec("INSERT INTO `salaries`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	s := newTestLedgerService(db)
	salary, err := s.PaySalary(1, SalaryInput{
		Amount:     30000,
		Month:      "January",
		Year:       2024,
		Allowances: 5000,
		Deductions: 2000,
	})
	require.NoError(t, err)

	assert.Equal(t, 33000.0, salary.NetSalary)
	assert.Equal(t, models.SalaryStatusPaid, salary.Status)
	assert.Equal(t, models.PaymentModeCash, salary.PaymentMode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_PaySalary_TeacherNotFound(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `teachers`").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectRollback()

	s := newTestLedgerService(db)
	_, err := s.PaySalary(42, SalaryInput{Amount: 30000, Month: "January", Year: 2024})
	assert.ErrorIs(t, err, ErrTeacherNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_CreateFee(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `students`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("UPDATE `sequences`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `sequences`").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).AddRow(models.SequenceReceipt, 7))
	mock.ExpectExec("INSERT INTO `fees`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	s := newTestLedgerService(db)
	fee := &models.Fee{StudentID: 1, FeeType: "Tuition", Amount: 1000, Month: "January", Year: 2024}
	require.NoError(t, s.CreateFee(fee))

	assert.Equal(t, "RCP00007", fee.ReceiptNumber)
	assert.Equal(t, models.FeeStatusPending, fee.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_CreateFee_StudentMissing(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `students`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	s := newTestLedgerService(db)
	err := s.CreateFee(&models.Fee{StudentID: 99, FeeType: "Tuition", Amount: 1000, Month: "January", Year: 2024})
	assert.ErrorIs(t, err, ErrStudentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_UnpostedPayments(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT fees\\..* FROM fees").
		WillReturnRows(sqlmock.NewRows([]string{"id", "paid_amount", "status"}).
			AddRow(3, 500, models.FeeStatusPartial))

	s := newTestLedgerService(db)
	fees, err := s.UnpostedPayments()
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, uint(3), fees[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_ApplyPayment_UsesProvidedDate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `fees`").
		WillReturnRows(feeRows(1, 1000, 0, 0, 0, models.FeeStatusPending))
	mock.ExpectQuery("SELECT .* FROM `students`").
		WillReturnRows(studentRows(1))
	mock.ExpectExec("UPDATE `fees` SET `paid_amount`=paid_amount").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `fees`").
		WillReturnRows(feeRows(1, 1000, 1000, 0, 0, models.FeeStatusPending))
	mock.ExpectExec("UPDATE `fees`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	payDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	s := newTestLedgerService(db)
	fee, err := s.ApplyPayment(1, PaymentInput{PaidAmount: 1000, PaymentDate: &payDate})
	require.NoError(t, err)

	require.NotNil(t, fee.PaymentDate)
	assert.True(t, fee.PaymentDate.Equal(payDate))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_CreateStudent(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `sequences`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `sequences`").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).AddRow(models.SequenceAdmission, 7))
	mock.ExpectExec("INSERT INTO `students`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	s := newTestLedgerService(db)
	student := models.Student{FirstName: "Ravi", LastName: "Kumar", Status: models.StudentStatusActive}
	require.NoError(t, s.CreateStudent(&student))

	assert.Equal(t, "STJ007", student.AdmissionNo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerService_CreateStudent_FailedInsertRollsBack(t *testing.T) {
	// the allocation shares the insert's transaction, so a failed insert
	// rolls the sequence bump back instead of burning the number
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `sequences`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `sequences`").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).AddRow(models.SequenceAdmission, 7))
	mock.ExpectExec("INSERT INTO `students`").
		WillReturnError(errors.New("duplicate roll number"))
	mock.ExpectRollback()

	s := newTestLedgerService(db)
	student := models.Student{FirstName: "Ravi", LastName: "Kumar"}
	assert.Error(t, s.CreateStudent(&student))
	require.NoError(t, mock.ExpectationsWereMet())
}
