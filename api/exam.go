package api

import (
	"time"

	"schoolms/database"
	"schoolms/models"

	"github.com/gin-gonic/gin"
)

// ExamHandler exam endpoints
type ExamHandler struct{}

// NewExamHandler creates an exam handler
func NewExamHandler() *ExamHandler {
	return &ExamHandler{}
}

type CreateExamRequest struct {
	Name      string               `json:"name" binding:"required"`
	ClassID   *uint                `json:"class_id"`
	Session   string               `json:"session" binding:"required"`
	StartDate string               `json:"start_date" binding:"required"` // 2006-01-02
	EndDate   string               `json:"end_date" binding:"required"`
	Subjects  []models.ExamSubject `json:"subjects"`
}

type UpdateExamRequest struct {
	Name      string               `json:"name"`
	ClassID   *uint                `json:"class_id"`
	Session   string               `json:"session"`
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Subjects  []models.ExamSubject `json:"subjects"`
	Status    string               `json:"status" binding:"omitempty,oneof=Upcoming Ongoing Completed"`
}

// List lists exams
// @Summary List exams
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param class_id query int false "class filter"
// @Param session query string false "session filter"
// @Param status query string false "status filter"
// @Success 200 {object} Response{data=[]models.Exam} "ok"
// @Router /api/v1/exams [get]
func (h *ExamHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Exam{}).Preload("Class")
	if classID := c.Query("class_id"); classID != "" {
		query = query.Where("class_id = ?", classID)
	}
	if session := c.Query("session"); session != "" {
		query = query.Where("session = ?", session)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var list []models.Exam
	if err := query.Order("start_date DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, list)
}

// Get returns one exam
// @Summary Get exam
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "exam id"
// @Success 200 {object} Response{data=models.Exam} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/exams/{id} [get]
func (h *ExamHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var exam models.Exam
	if err := database.DB.Preload("Class").First(&exam, id).Error; err != nil {
		NotFound(c, "exam not found")
		return
	}
	Success(c, exam)
}

// Create schedules an exam
// @Summary Create exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExamRequest true "exam"
// @Success 200 {object} Response{data=models.Exam} "created"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/exams [post]
func (h *ExamHandler) Create(c *gin.Context) {
	var req CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	start, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		BadRequest(c, "start_date must be formatted as 2006-01-02")
		return
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
	if err != nil {
		BadRequest(c, "end_date must be formatted as 2006-01-02")
		return
	}
	if end.Before(start) {
		BadRequest(c, "end_date must not be before start_date")
		return
	}
	exam := models.Exam{
		Name:      req.Name,
		ClassID:   req.ClassID,
		Session:   req.Session,
		StartDate: start,
		EndDate:   end,
		Subjects:  req.Subjects,
		Status:    models.ExamStatusUpcoming,
	}
	if err := database.DB.Create(&exam).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create exam"))
		return
	}
	SuccessWithMessage(c, "exam created", exam)
}

// Update updates an exam
// @Summary Update exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "exam id"
// @Param request body UpdateExamRequest true "fields to update"
// @Success 200 {object} Response{data=models.Exam} "updated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/exams/{id} [put]
func (h *ExamHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var exam models.Exam
	if err := database.DB.First(&exam, id).Error; err != nil {
		NotFound(c, "exam not found")
		return
	}
	var req UpdateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.Name != "" {
		exam.Name = req.Name
	}
	if req.ClassID != nil {
		exam.ClassID = req.ClassID
	}
	if req.Session != "" {
		exam.Session = req.Session
	}
	if req.StartDate != "" {
		start, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
		if err != nil {
			BadRequest(c, "start_date must be formatted as 2006-01-02")
			return
		}
		exam.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
		if err != nil {
			BadRequest(c, "end_date must be formatted as 2006-01-02")
			return
		}
		exam.EndDate = end
	}
	if req.Subjects != nil {
		exam.Subjects = req.Subjects
	}
	if req.Status != "" {
		exam.Status = req.Status
	}
	if err := database.DB.Save(&exam).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update exam"))
		return
	}
	SuccessWithMessage(c, "exam updated", exam)
}

// Delete removes an exam (soft delete)
// @Summary Delete exam
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "exam id"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/exams/{id} [delete]
func (h *ExamHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var exam models.Exam
	if err := database.DB.First(&exam, id).Error; err != nil {
		NotFound(c, "exam not found")
		return
	}
	if err := database.DB.Delete(&exam).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete exam"))
		return
	}
	SuccessWithMessage(c, "exam deleted", nil)
}
