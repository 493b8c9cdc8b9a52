package api

import (
	"errors"
	"time"

	"schoolms/database"
	"schoolms/models"
	"schoolms/service"

	"github.com/gin-gonic/gin"
)

// TeacherHandler teacher and salary endpoints
type TeacherHandler struct {
	ledger *service.LedgerService
}

// NewTeacherHandler creates a teacher handler
func NewTeacherHandler() *TeacherHandler {
	return &TeacherHandler{ledger: service.NewLedgerService(database.DB)}
}

type CreateTeacherRequest struct {
	EmployeeID    string  `json:"employee_id" binding:"required"`
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      string  `json:"last_name" binding:"required"`
	Gender        string  `json:"gender" binding:"required,oneof=Male Female Other"`
	DateOfBirth   string  `json:"date_of_birth" binding:"required"` // 2006-01-02
	Qualification string  `json:"qualification"`
	Experience    string  `json:"experience"`
	Subject       string  `json:"subject"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email" binding:"omitempty,email"`
	Address       string  `json:"address"`
	Salary        float64 `json:"salary"`
	JoiningDate   string  `json:"joining_date"` // 2006-01-02
	ProfileImage  string  `json:"profile_image"`
}

type UpdateTeacherRequest struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Gender        string   `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	DateOfBirth   string   `json:"date_of_birth"`
	Qualification string   `json:"qualification"`
	Experience    string   `json:"experience"`
	Subject       string   `json:"subject"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Address       string   `json:"address"`
	Salary        *float64 `json:"salary"`
	ProfileImage  string   `json:"profile_image"`
	Status        string   `json:"status" binding:"omitempty,oneof=Active Inactive Retired Resigned"`
}

type PaySalaryRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Month         string  `json:"month" binding:"required"`
	Year          int     `json:"year" binding:"required"`
	Allowances    float64 `json:"allowances"`
	Deductions    float64 `json:"deductions"`
	PaymentMode   string  `json:"payment_mode" binding:"omitempty,oneof=Cash Card 'Bank Transfer' UPI Cheque"`
	TransactionID string  `json:"transaction_id"`
	PaymentDate   string  `json:"payment_date"` // 2006-01-02
	Remarks       string  `json:"remarks"`
}

// List lists teachers with optional filters
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param search query string false "matches name or employee id"
// @Param status query string false "teacher status"
// @Param subject query string false "subject filter"
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(20)
// @Success 200 {object} Response{data=PageResponse{list=[]models.Teacher}} "ok"
// @Router /api/v1/teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	query := database.DB.Model(&models.Teacher{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR employee_id LIKE ?", like, like, like)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject = ?", subject)
	}

	var total int64
	query.Count(&total)
	var list []models.Teacher
	if err := query.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, PageResponse{Total: total, Page: page, PageSize: pageSize, List: list})
}

// Get returns one teacher
// @Summary Get teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "teacher id"
// @Success 200 {object} Response{data=models.Teacher} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/teachers/{id} [get]
func (h *TeacherHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var teacher models.Teacher
	if err := database.DB.First(&teacher, id).Error; err != nil {
		NotFound(c, "teacher not found")
		return
	}
	Success(c, teacher)
}

// Create registers a new teacher
// @Summary Create teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTeacherRequest true "teacher"
// @Success 200 {object} Response{data=models.Teacher} "created"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/teachers [post]
func (h *TeacherHandler) Create(c *gin.Context) {
	var req CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	dob, err := time.ParseInLocation("2006-01-02", req.DateOfBirth, time.Local)
	if err != nil {
		BadRequest(c, "date_of_birth must be formatted as 2006-01-02")
		return
	}
	joining := time.Now()
	if req.JoiningDate != "" {
		joining, err = time.ParseInLocation("2006-01-02", req.JoiningDate, time.Local)
		if err != nil {
			BadRequest(c, "joining_date must be formatted as 2006-01-02")
			return
		}
	}
	teacher := models.Teacher{
		EmployeeID:    req.EmployeeID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Gender:        req.Gender,
		DateOfBirth:   dob,
		Qualification: req.Qualification,
		Experience:    req.Experience,
		Subject:       req.Subject,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Salary:        req.Salary,
		JoiningDate:   joining,
		ProfileImage:  req.ProfileImage,
		Status:        models.TeacherStatusActive,
	}
	if err := database.DB.Create(&teacher).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "failed to create teacher, employee id may already exist"))
		return
	}
	SuccessWithMessage(c, "teacher created", teacher)
}

// Update updates a teacher
// @Summary Update teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "teacher id"
// @Param request body UpdateTeacherRequest true "fields to update"
// @Success 200 {object} Response{data=models.Teacher} "updated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/teachers/{id} [put]
func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var teacher models.Teacher
	if err := database.DB.First(&teacher, id).Error; err != nil {
		NotFound(c, "teacher not found")
		return
	}
	var req UpdateTeacherRequest
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
	if req.Qualification != "" {
		updates["qualification"] = req.Qualification
	}
	if req.Experience != "" {
		updates["experience"] = req.Experience
	}
	if req.Subject != "" {
		updates["subject"] = req.Subject
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
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.ProfileImage != "" {
		updates["profile_image"] = req.ProfileImage
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if err := database.DB.Model(&teacher).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update teacher"))
		return
	}
	database.DB.First(&teacher, teacher.ID)
	SuccessWithMessage(c, "teacher updated", teacher)
}

// Delete removes a teacher (soft delete)
// @Summary Delete teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "teacher id"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/teachers/{id} [delete]
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var teacher models.Teacher
	if err := database.DB.First(&teacher, id).Error; err != nil {
		NotFound(c, "teacher not found")
		return
	}
	if err := database.DB.Delete(&teacher).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete teacher"))
		return
	}
	SuccessWithMessage(c, "teacher deleted", nil)
}

// ListSalaries lists a teacher's salary history
// @Summary Salary history
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "teacher id"
// @Success 200 {object} Response{data=[]models.Salary} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/teachers/{id}/salaries [get]
func (h *TeacherHandler) ListSalaries(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var cnt int64
	database.DB.Model(&models.Teacher{}).Where("id = ?", id).Count(&cnt)
	if cnt == 0 {
		NotFound(c, "teacher not found")
		return
	}
	var salaries []models.Salary
	if err := database.DB.Where("teacher_id = ?", id).
		Order("year DESC, month DESC").
		Find(&salaries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, salaries)
}

// PaySalary records a salary payment, mirroring it into the expense ledger
// @Summary Pay salary
// @Description Records a salary payment and posts the mirrored expense entry in one transaction
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "teacher id"
// @Param request body PaySalaryRequest true "salary payment"
// @Success 200 {object} Response{data=models.Salary} "paid"
// @Failure 400 {object} Response "bad request"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/teachers/{id}/salaries [post]
func (h *TeacherHandler) PaySalary(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PaySalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	in := service.SalaryInput{
		Amount:        req.Amount,
		Month:         req.Month,
		Year:          req.Year,
		Allowances:    req.Allowances,
		Deductions:    req.Deductions,
		PaymentMode:   req.PaymentMode,
		TransactionID: req.TransactionID,
		Remarks:       req.Remarks,
	}
	if req.PaymentDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.PaymentDate, time.Local)
		if err != nil {
			BadRequest(c, "payment_date must be formatted as 2006-01-02")
			return
		}
		in.PaymentDate = &t
	}
	salary, err := h.ledger.PaySalary(id, in)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			NotFound(c, "teacher not found")
			return
		}
		if errors.Is(err, service.ErrInvalidAmount) {
			BadRequest(c, err.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "failed to record salary payment"))
		return
	}
	SuccessWithMessage(c, "salary paid", salary)
}
