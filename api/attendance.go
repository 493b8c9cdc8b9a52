package api

import (
	"time"

	"schoolms/database"
	"schoolms/middleware"
	"schoolms/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AttendanceHandler attendance endpoints
type AttendanceHandler struct{}

// NewAttendanceHandler creates an attendance handler
func NewAttendanceHandler() *AttendanceHandler {
	return &AttendanceHandler{}
}

type MarkAttendanceRequest struct {
	StudentID uint   `json:"student_id" binding:"required"`
	ClassID   *uint  `json:"class_id"`
	Date      string `json:"date" binding:"required"` // 2006-01-02
	Status    string `json:"status" binding:"required,oneof=Present Absent Late 'Half Day' Holiday"`
	Remarks   string `json:"remarks"`
}

type BulkAttendanceRequest struct {
	ClassID *uint  `json:"class_id"`
	Date    string `json:"date" binding:"required"`
	Records []struct {
		StudentID uint   `json:"student_id" binding:"required"`
		Status    string `json:"status" binding:"required,oneof=Present Absent Late 'Half Day' Holiday"`
		Remarks   string `json:"remarks"`
	} `json:"records" binding:"required,min=1"`
}

// ClassAttendanceEntry one student's mark on the class register
type ClassAttendanceEntry struct {
	Student models.Student `json:"student"`
	Status  string         `json:"status"`
	Remarks string         `json:"remarks"`
}

// List lists attendance records
// @Summary List attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "student filter"
// @Param class_id query int false "class filter"
// @Param date query string false "exact day (2006-01-02)"
// @Param start_date query string false "range start"
// @Param end_date query string false "range end"
// @Param status query string false "status filter"
// @Success 200 {object} Response{data=[]models.Attendance} "ok"
// @Router /api/v1/attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Attendance{}).Preload("Student")
	if studentID := c.Query("student_id"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	if classID := c.Query("class_id"); classID != "" {
		query = query.Where("class_id = ?", classID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if day := c.Query("date"); day != "" {
		if t, err := time.ParseInLocation("2006-01-02", day, time.Local); err == nil {
			query = query.Where("date >= ? AND date < ?", t, t.AddDate(0, 0, 1))
		}
	}
	query = dateRangeFilter(c, query, "date")

	var list []models.Attendance
	if err := query.Order("date DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, list)
}

// Mark marks one student's attendance, updating an existing mark for the
// same day instead of duplicating it
// @Summary Mark attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MarkAttendanceRequest true "attendance mark"
// @Success 200 {object} Response{data=models.Attendance} "marked"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/attendance [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	day, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		BadRequest(c, "date must be formatted as 2006-01-02")
		return
	}
	userID := middleware.GetCurrentUserID(c)

	record, err := h.upsertMark(database.DB, req.StudentID, req.ClassID, day, req.Status, req.Remarks, userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to mark attendance"))
		return
	}
	SuccessWithMessage(c, "attendance marked", record)
}

// MarkBulk marks attendance for a whole class in one request
// @Summary Bulk mark attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkAttendanceRequest true "attendance marks"
// @Success 200 {object} Response "marked"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/attendance/bulk [post]
func (h *AttendanceHandler) MarkBulk(c *gin.Context) {
	var req BulkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	day, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		BadRequest(c, "date must be formatted as 2006-01-02")
		return
	}
	userID := middleware.GetCurrentUserID(c)

	// one transaction for the whole class: a failing record leaves no
	// partly-marked register behind
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, r := range req.Records {
			if _, err := h.upsertMark(tx, r.StudentID, req.ClassID, day, r.Status, r.Remarks, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to mark attendance"))
		return
	}
	SuccessWithMessage(c, "attendance marked", gin.H{"count": len(req.Records)})
}

// StudentHistory lists a student's attendance records
// @Summary Student attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "student id"
// @Param start_date query string false "range start"
// @Param end_date query string false "range end"
// @Success 200 {object} Response{data=[]models.Attendance} "ok"
// @Router /api/v1/attendance/student/{studentId} [get]
func (h *AttendanceHandler) StudentHistory(c *gin.Context) {
	query := database.DB.Model(&models.Attendance{}).
		Where("student_id = ?", c.Param("studentId"))
	query = dateRangeFilter(c, query, "date")

	var list []models.Attendance
	if err := query.Order("date DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, list)
}

// ClassRegister lists every active student of a class with their mark for
// a day, "Not Marked" for students without a record
// @Summary Class attendance register
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param classId path int true "class id"
// @Param date query string false "day (2006-01-02), defaults to today"
// @Success 200 {object} Response{data=[]ClassAttendanceEntry} "ok"
// @Router /api/v1/attendance/class/{classId} [get]
func (h *AttendanceHandler) ClassRegister(c *gin.Context) {
	classID := c.Param("classId")

	day := time.Now()
	if d := c.Query("date"); d != "" {
		t, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			BadRequest(c, "date must be formatted as 2006-01-02")
			return
		}
		day = t
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)

	var students []models.Student
	if err := database.DB.
		Where("class_id = ? AND status = ?", classID, models.StudentStatusActive).
		Order("roll_number").
		Find(&students).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}

	var marks []models.Attendance
	if err := database.DB.
		Where("class_id = ? AND date >= ? AND date < ?", classID, dayStart, dayStart.AddDate(0, 0, 1)).
		Find(&marks).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	byStudent := make(map[uint]models.Attendance, len(marks))
	for _, m := range marks {
		byStudent[m.StudentID] = m
	}

	register := make([]ClassAttendanceEntry, 0, len(students))
	for _, s := range students {
		entry := ClassAttendanceEntry{Student: s, Status: "Not Marked"}
		if m, ok := byStudent[s.ID]; ok {
			entry.Status = m.Status
			entry.Remarks = m.Remarks
		}
		register = append(register, entry)
	}
	Success(c, register)
}

// upsertMark writes one attendance mark, replacing an existing mark for the
// same student and day
func (h *AttendanceHandler) upsertMark(db *gorm.DB, studentID uint, classID *uint, day time.Time, status, remarks string, markedBy uint) (*models.Attendance, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)

	var existing models.Attendance
	err := db.
		Where("student_id = ? AND date >= ? AND date < ?", studentID, dayStart, dayStart.AddDate(0, 0, 1)).
		First(&existing).Error
	if err == nil {
		updates := map[string]interface{}{
			"status":  status,
			"remarks": remarks,
		}
		if markedBy > 0 {
			updates["marked_by"] = markedBy
		}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
		db.First(&existing, existing.ID)
		return &existing, nil
	}

	record := models.Attendance{
		StudentID: studentID,
		ClassID:   classID,
		Date:      dayStart,
		Status:    status,
		Remarks:   remarks,
	}
	if markedBy > 0 {
		record.MarkedBy = &markedBy
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
