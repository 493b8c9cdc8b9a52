package api

import (
	"schoolms/database"
	"schoolms/models"

	"github.com/gin-gonic/gin"
)

// ResultHandler exam result endpoints
type ResultHandler struct{}

// NewResultHandler creates a result handler
func NewResultHandler() *ResultHandler {
	return &ResultHandler{}
}

type SubjectMarkInput struct {
	Subject     string  `json:"subject" binding:"required"`
	SubjectCode string  `json:"subject_code"`
	Marks       float64 `json:"marks" binding:"gte=0"`
	MaxMarks    float64 `json:"max_marks" binding:"required,gt=0"`
}

type CreateResultRequest struct {
	StudentID uint               `json:"student_id" binding:"required"`
	ExamID    uint               `json:"exam_id" binding:"required"`
	ClassID   *uint              `json:"class_id"`
	Marks     []SubjectMarkInput `json:"marks" binding:"required,min=1,dive"`
	Session   string             `json:"session" binding:"required"`
	Remarks   string             `json:"remarks"`
}

type UpdateResultRequest struct {
	Marks   []SubjectMarkInput `json:"marks" binding:"omitempty,min=1,dive"`
	Rank    *int               `json:"rank"`
	Remarks string             `json:"remarks"`
}

// List lists results
// @Summary List results
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "student filter"
// @Param exam_id query int false "exam filter"
// @Param class_id query int false "class filter"
// @Param session query string false "session filter"
// @Success 200 {object} Response{data=[]models.Result} "ok"
// @Router /api/v1/results [get]
func (h *ResultHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Result{}).Preload("Student").Preload("Exam")
	if studentID := c.Query("student_id"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	if examID := c.Query("exam_id"); examID != "" {
		query = query.Where("exam_id = ?", examID)
	}
	if classID := c.Query("class_id"); classID != "" {
		query = query.Where("class_id = ?", classID)
	}
	if session := c.Query("session"); session != "" {
		query = query.Where("session = ?", session)
	}
	var list []models.Result
	if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, list)
}

// Get returns one result
// @Summary Get result
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path int true "result id"
// @Success 200 {object} Response{data=models.Result} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/results/{id} [get]
func (h *ResultHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var result models.Result
	if err := database.DB.Preload("Student").Preload("Exam").First(&result, id).Error; err != nil {
		NotFound(c, "result not found")
		return
	}
	Success(c, result)
}

// Create records a result. Grades, totals, percentage and pass/fail are
// computed server-side from the raw marks.
// @Summary Create result
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateResultRequest true "result"
// @Success 200 {object} Response{data=models.Result} "created"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/results [post]
func (h *ResultHandler) Create(c *gin.Context) {
	var req CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	var cnt int64
	database.DB.Model(&models.Student{}).Where("id = ?", req.StudentID).Count(&cnt)
	if cnt == 0 {
		NotFound(c, "student not found")
		return
	}
	database.DB.Model(&models.Exam{}).Where("id = ?", req.ExamID).Count(&cnt)
	if cnt == 0 {
		NotFound(c, "exam not found")
		return
	}

	result := models.Result{
		StudentID: req.StudentID,
		ExamID:    req.ExamID,
		ClassID:   req.ClassID,
		Marks:     toSubjectMarks(req.Marks),
		Session:   req.Session,
		Remarks:   req.Remarks,
	}
	result.Compute()
	if err := database.DB.Create(&result).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create result"))
		return
	}
	SuccessWithMessage(c, "result created", result)
}

// Update updates marks and recomputes the derived fields
// @Summary Update result
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "result id"
// @Param request body UpdateResultRequest true "fields to update"
// @Success 200 {object} Response{data=models.Result} "updated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/results/{id} [put]
func (h *ResultHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var result models.Result
	if err := database.DB.First(&result, id).Error; err != nil {
		NotFound(c, "result not found")
		return
	}
	var req UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.Marks != nil {
		result.Marks = toSubjectMarks(req.Marks)
		result.Compute()
	}
	if req.Rank != nil {
		result.Rank = *req.Rank
	}
	if req.Remarks != "" {
		result.Remarks = req.Remarks
	}
	if err := database.DB.Save(&result).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update result"))
		return
	}
	SuccessWithMessage(c, "result updated", result)
}

// Delete removes a result (soft delete)
// @Summary Delete result
// @Tags results
// @Produce json
// @Security BearerAuth
// @Param id path int true "result id"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/results/{id} [delete]
func (h *ResultHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var result models.Result
	if err := database.DB.First(&result, id).Error; err != nil {
		NotFound(c, "result not found")
		return
	}
	if err := database.DB.Delete(&result).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete result"))
		return
	}
	SuccessWithMessage(c, "result deleted", nil)
}

func toSubjectMarks(in []SubjectMarkInput) []models.SubjectMark {
	marks := make([]models.SubjectMark, 0, len(in))
	for _, m := range in {
		marks = append(marks, models.SubjectMark{
			Subject:     m.Subject,
			SubjectCode: m.SubjectCode,
			Marks:       m.Marks,
			MaxMarks:    m.MaxMarks,
		})
	}
	return marks
}
