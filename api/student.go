package api

import (
	"strconv"
	"time"

	"schoolms/database"
	"schoolms/models"
	"schoolms/service"

	"github.com/gin-gonic/gin"
)

// StudentHandler student endpoints
type StudentHandler struct {
	ledger *service.LedgerService
}

// NewStudentHandler creates a student handler
func NewStudentHandler() *StudentHandler {
	return &StudentHandler{ledger: service.NewLedgerService(database.DB)}
}

type CreateStudentRequest struct {
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      string  `json:"last_name" binding:"required"`
	Gender        string  `json:"gender" binding:"required,oneof=Male Female Other"`
	DateOfBirth   string  `json:"date_of_birth" binding:"required"` // 2006-01-02
	Religion      string  `json:"religion"`
	Category      string  `json:"category" binding:"omitempty,oneof=General OBC SC ST Other"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email" binding:"omitempty,email"`
	Address       string  `json:"address"`
	FatherName    string  `json:"father_name"`
	MotherName    string  `json:"mother_name"`
	GuardianPhone string  `json:"guardian_phone"`
	ClassID       *uint   `json:"class_id"`
	Section       string  `json:"section"`
	RollNumber    int     `json:"roll_number"`
	Session       string  `json:"session" binding:"required"`
	ProfileImage  string  `json:"profile_image"`
	TotalFee      float64 `json:"total_fee"`
}

type UpdateStudentRequest struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Gender        string   `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	DateOfBirth   string   `json:"date_of_birth"`
	Religion      string   `json:"religion"`
	Category      string   `json:"category" binding:"omitempty,oneof=General OBC SC ST Other"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Address       string   `json:"address"`
	FatherName    string   `json:"father_name"`
	MotherName    string   `json:"mother_name"`
	GuardianPhone string   `json:"guardian_phone"`
	ClassID       *uint    `json:"class_id"`
	Section       string   `json:"section"`
	RollNumber    *int     `json:"roll_number"`
	Session       string   `json:"session"`
	ProfileImage  string   `json:"profile_image"`
	Status        string   `json:"status" binding:"omitempty,oneof=Active Inactive 'Passed Out' Transferred"`
	TotalFee      *float64 `json:"total_fee"`
}

// List lists students with optional filters
// @Summary List students
// @Description List students, filterable by search text, status and class
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "matches name or admission number"
// @Param status query string false "student status"
// @Param class_id query int false "class filter"
// @Param session query string false "session filter"
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(20)
// @Success 200 {object} Response{data=PageResponse{list=[]models.Student}} "ok"
// @Router /api/v1/students [get]
func (h *StudentHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	query := database.DB.Model(&models.Student{}).Preload("Class")
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR admission_no LIKE ?", like, like, like)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if classID := c.Query("class_id"); classID != "" {
		query = query.Where("class_id = ?", classID)
	}
	if session := c.Query("session"); session != "" {
		query = query.Where("session = ?", session)
	}

	var total int64
	query.Count(&total)
	var list []models.Student
	if err := query.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, PageResponse{Total: total, Page: page, PageSize: pageSize, List: list})
}

// Get returns one student
// @Summary Get student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "student id"
// @Success 200 {object} Response{data=models.Student} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var student models.Student
	if err := database.DB.Preload("Class").First(&student, id).Error; err != nil {
		NotFound(c, "student not found")
		return
	}
	Success(c, student)
}

// Create registers a new student, allocating the admission number
// @Summary Create student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStudentRequest true "student"
// @Success 200 {object} Response{data=models.Student} "created"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	dob, err := time.ParseInLocation("2006-01-02", req.DateOfBirth, time.Local)
	if err != nil {
		BadRequest(c, "date_of_birth must be formatted as 2006-01-02")
		return
	}
	category := req.Category
	if category == "" {
		category = "General"
	}
	student := models.Student{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Gender:        req.Gender,
		DateOfBirth:   dob,
		Religion:      req.Religion,
		Category:      category,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		FatherName:    req.FatherName,
		MotherName:    req.MotherName,
		GuardianPhone: req.GuardianPhone,
		ClassID:       req.ClassID,
		Section:       req.Section,
		RollNumber:    req.RollNumber,
		Session:       req.Session,
		ProfileImage:  req.ProfileImage,
		Status:        models.StudentStatusActive,
		TotalFee:      req.TotalFee,
	}
	if err := h.ledger.CreateStudent(&student); err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create student"))
		return
	}
	SuccessWithMessage(c, "student created", student)
}

// Update updates a student
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "student id"
// @Param request body UpdateStudentRequest true "fields to update"
// @Success 200 {object} Response{data=models.Student} "updated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var student models.Student
	if err := database.DB.First(&student, id).Error; err != nil {
		NotFound(c, "student not found")
		return
	}
	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	updates := map[string]interface{}{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Gender != "" {
		updates["gender"] = req.Gender
	}
	if req.DateOfBirth != "" {
		dob, err := time.ParseInLocation("2006-01-02", req.DateOfBirth, time.Local)
		if err != nil {
			BadRequest(c, "date_of_birth must be formatted as 2006-01-02")
			return
		}
		updates["date_of_birth"] = dob
	}
	if req.Religion != "" {
		updates["religion"] = req.Religion
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.FatherName != "" {
		updates["father_name"] = req.FatherName
	}
	if req.MotherName != "" {
		updates["mother_name"] = req.MotherName
	}
	if req.GuardianPhone != "" {
		updates["guardian_phone"] = req.GuardianPhone
	}
	if req.ClassID != nil {
		updates["class_id"] = *req.ClassID
	}
	if req.Section != "" {
		updates["section"] = req.Section
	}
	if req.RollNumber != nil {
		updates["roll_number"] = *req.RollNumber
	}
	if req.Session != "" {
		updates["session"] = req.Session
	}
	if req.ProfileImage != "" {
		updates["profile_image"] = req.ProfileImage
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.TotalFee != nil {
		updates["total_fee"] = *req.TotalFee
	}
	if err := database.DB.Model(&student).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update student"))
		return
	}
	database.DB.First(&student, student.ID)
	SuccessWithMessage(c, "student updated", student)
}

// Delete removes a student (soft delete)
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "student id"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var student models.Student
	if err := database.DB.First(&student, id).Error; err != nil {
		NotFound(c, "student not found")
		return
	}
	if err := database.DB.Delete(&student).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete student"))
		return
	}
	SuccessWithMessage(c, "student deleted", nil)
}

// NextAdmissionNo previews the next admission number without reserving it;
// the number is only consumed when a student is created
// @Summary Next admission number
// @Description Returns the admission number the next registration will receive
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "ok"
// @Router /api/v1/students/next-admission-no [get]
func (h *StudentHandler) NextAdmissionNo(c *gin.Context) {
	no, err := h.ledger.PeekAdmissionNo()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to read admission number"))
		return
	}
	Success(c, gin.H{"admission_no": no})
}

// pagination parses page/page_size query params, capping page size at 100
func pagination(c *gin.Context) (int, int) {
	page := 1
	pageSize := 20
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.Query("page_size")); err == nil && ps > 0 {
		pageSize = ps
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
