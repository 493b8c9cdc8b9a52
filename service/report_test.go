package service

import (
	"testing"
	"time"

	"schoolms/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_MonthlySeries(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT MONTH\\(date\\) AS m.* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"m", "total"}).
			AddRow(1, 5000.0).
			AddRow(3, 2000.0))
	mock.ExpectQuery("SELECT MONTH\\(date\\) AS m.* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"m", "total"}).
			AddRow(1, 3000.0).
			AddRow(2, 1000.0))

	s := NewReportService(db)
	series, err := s.MonthlySeries(2024)
	require.NoError(t, err)
	require.Len(t, series, 12)

	assert.Equal(t, "January", series[0].Month)
	assert.Equal(t, 5000.0, series[0].Income)
	assert.Equal(t, 3000.0, series[0].Expense)
	assert.Equal(t, 2000.0, series[0].Balance)

	// February has no income, the balance carries over
	assert.Equal(t, 0.0, series[1].Income)
	assert.Equal(t, 1000.0, series[1].Expense)
	assert.Equal(t, 1000.0, series[1].Balance)

	assert.Equal(t, 2000.0, series[2].Income)
	assert.Equal(t, 3000.0, series[2].Balance)

	// months with no activity stay zero-filled
	for i := 3; i < 12; i++ {
		assert.Equal(t, 0.0, series[i].Income, series[i].Month)
		assert.Equal(t, 0.0, series[i].Expense, series[i].Month)
		assert.Equal(t, 3000.0, series[i].Balance, series[i].Month)
	}
	assert.Equal(t, "December", series[11].Month)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportService_MonthlySeries_Empty(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT MONTH\\(date\\) AS m.* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"m", "total"}))
	mock.ExpectQuery("SELECT MONTH\\(date\\) AS m.* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"m", "total"}))

	s := NewReportService(db)
	series, err := s.MonthlySeries(2023)
	require.NoError(t, err)
	require.Len(t, series, 12)
	for _, entry := range series {
		assert.Equal(t, 0.0, entry.Income)
		assert.Equal(t, 0.0, entry.Expense)
		assert.Equal(t, 0.0, entry.Balance)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportService_PendingTotal(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount - paid_amount\\), 0\\) FROM `fees`").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(4500.0))

	s := NewReportService(db)
	total, err := s.PendingTotal()
	require.NoError(t, err)
	assert.Equal(t, 4500.0, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportService_TotalCollected(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(paid_amount\\), 0\\) FROM `fees`").
		WithArgs(models.FeeStatusPaid).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(12000.0))

	s := NewReportService(db)
	total, err := s.TotalCollected()
	require.NoError(t, err)
	assert.Equal(t, 12000.0, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportService_MonthlyCollected(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(paid_amount\\), 0\\) FROM `fees`").
		WithArgs(models.FeeStatusPaid, 2024, "January").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(3000.0))

	s := NewReportService(db)
	total, err := s.MonthlyCollected(2024, time.January.String())
	require.NoError(t, err)
	assert.Equal(t, 3000.0, total)
	require.NoError(t, mock.ExpectationsWereMet())
}
