package service

import (
	"time"

	"schoolms/models"

	"gorm.io/gorm"
)

// ReportService read-only aggregates over the fee/income/expense/attendance
// collections. All methods are pure reads.
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a report service on the given database handle
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// MonthSeriesEntry one month in the yearly income/expense chart
type MonthSeriesEntry struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// DashboardStats headline numbers for the admin dashboard
type DashboardStats struct {
	TotalStudents        int64               `json:"total_students"`
	TotalStaff           int64               `json:"total_staff"`
	FeesCollected        float64             `json:"fees_collected"`
	MonthlyFeesCollected float64             `json:"monthly_fees_collected"`
	PendingFees          float64             `json:"pending_fees"`
	TodayAttendance      AttendanceBreakdown `json:"today_attendance"`
	TotalIncome          float64             `json:"total_income"`
	TotalExpense         float64             `json:"total_expense"`
	RecentNotices        []models.Notice     `json:"recent_notices"`
}

// AttendanceBreakdown present/absent counts for one day
type AttendanceBreakdown struct {
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
	Total   int64 `json:"total"`
}

// TotalCollected sum of paid amounts over fully paid fees
func (s *ReportService) TotalCollected() (float64, error) {
	var total float64
	err := s.db.Model(&models.Fee{}).
		Where("status = ?", models.FeeStatusPaid).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&total).Error
	return total, err
}

// MonthlyCollected sum of paid amounts over fully paid fees for one month
func (s *ReportService) MonthlyCollected(year int, month string) (float64, error) {
	var total float64
	err := s.db.Model(&models.Fee{}).
		Where("status = ? AND year = ? AND month = ?", models.FeeStatusPaid, year, month).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&total).Error
	return total, err
}

// PendingTotal sum of (amount - paid_amount) over fees not fully paid.
// Fine and discount are deliberately excluded, matching the payment page's
// historical due calculation.
func (s *ReportService) PendingTotal() (float64, error) {
	var total float64
	err := s.db.Model(&models.Fee{}).
		Where("status <> ?", models.FeeStatusPaid).
		Select("COALESCE(SUM(amount - paid_amount), 0)").
		Scan(&total).Error
	return total, err
}

// MonthlySeries income and expense totals per calendar month of year, with
// a running balance. Always returns exactly 12 entries in calendar order,
// zero-filled for months with no activity. Records dated outside the year
// never contribute.
func (s *ReportService) MonthlySeries(year int) ([]MonthSeriesEntry, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)

	type monthTotal struct {
		M     int
		Total float64
	}

	var incomeRows []monthTotal
	if err := s.db.Model(&models.Income{}).
		Select("MONTH(date) AS m, COALESCE(SUM(amount), 0) AS total").
		Where("date >= ? AND date < ?", start, end).
		Group("MONTH(date)").
		Scan(&incomeRows).Error; err != nil {
		return nil, err
	}

	var expenseRows []monthTotal
	if err := s.db.Model(&models.Expense{}).
		Select("MONTH(date) AS m, COALESCE(SUM(amount), 0) AS total").
		Where("date >= ? AND date < ?", start, end).
		Group("MONTH(date)").
		Scan(&expenseRows).Error; err != nil {
		return nil, err
	}

	series := make([]MonthSeriesEntry, 12)
	for i := 0; i < 12; i++ {
		series[i].Month = time.Month(i + 1).String()
	}
	for _, r := range incomeRows {
		if r.M >= 1 && r.M <= 12 {
			series[r.M-1].Income = r.Total
		}
	}
	for _, r := range expenseRows {
		if r.M >= 1 && r.M <= 12 {
			series[r.M-1].Expense = r.Total
		}
	}

	var balance float64
	for i := range series {
		balance += series[i].Income - series[i].Expense
		series[i].Balance = balance
	}
	return series, nil
}

// Stats collects the dashboard headline numbers
func (s *ReportService) Stats(now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Student{}).
		Where("status = ?", models.StudentStatusActive).
		Count(&stats.TotalStudents).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Teacher{}).
		Where("status = ?", models.TeacherStatusActive).
		Count(&stats.TotalStaff).Error; err != nil {
		return nil, err
	}

	var err error
	if stats.FeesCollected, err = s.TotalCollected(); err != nil {
		return nil, err
	}
	if stats.MonthlyFeesCollected, err = s.MonthlyCollected(now.Year(), now.Month().String()); err != nil {
		return nil, err
	}
	if stats.PendingFees, err = s.PendingTotal(); err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	if err := s.db.Model(&models.Attendance{}).
		Where("date >= ? AND date < ? AND status = ?", today, tomorrow, models.AttendanceStatusPresent).
		Count(&stats.TodayAttendance.Present).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Attendance{}).
		Where("date >= ? AND date < ? AND status = ?", today, tomorrow, models.AttendanceStatusAbsent).
		Count(&stats.TodayAttendance.Absent).Error; err != nil {
		return nil, err
	}
	stats.TodayAttendance.Total = stats.TodayAttendance.Present + stats.TodayAttendance.Absent

	if err := s.db.Model(&models.Income{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalIncome).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalExpense).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Notice{}).
		Where("is_active = ?", true).
		Order("publish_date DESC").
		Limit(5).
		Find(&stats.RecentNotices).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
