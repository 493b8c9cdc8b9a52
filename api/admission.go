package api

import (
	"log"
	"time"

	"schoolms/config"
	"schoolms/database"
	"schoolms/models"
	"schoolms/service"

	"github.com/gin-gonic/gin"
)

// AdmissionHandler admission enquiry endpoints
type AdmissionHandler struct {
	email *service.EmailService
}

// NewAdmissionHandler creates an admission handler
func NewAdmissionHandler() *AdmissionHandler {
	return &AdmissionHandler{
		email: service.NewEmailService(&config.GlobalConfig.Email),
	}
}

type CreateAdmissionRequest struct {
	FirstName        string `json:"first_name" binding:"required"`
	LastName         string `json:"last_name" binding:"required"`
	Gender           string `json:"gender" binding:"required,oneof=Male Female Other"`
	DateOfBirth      string `json:"date_of_birth" binding:"required"`
	Religion         string `json:"religion"`
	Category         string `json:"category"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email" binding:"omitempty,email"`
	Address          string `json:"address" binding:"required"`
	FatherName       string `json:"father_name" binding:"required"`
	MotherName       string `json:"mother_name"`
	FatherOccupation string `json:"father_occupation"`
	GuardianPhone    string `json:"guardian_phone"`
	PreviousSchool   string `json:"previous_school"`
	Class            string `json:"class" binding:"required"`
}

type UpdateAdmissionStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=Pending Reviewed Approved Rejected"`
	Remarks string `json:"remarks"`
}

// List lists admission enquiries
// @Summary List admission enquiries
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Param status query string false "status filter"
// @Param class query string false "class filter"
// @Success 200 {object} Response{data=[]models.Admission} "ok"
// @Router /api/v1/admissions [get]
func (h *AdmissionHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Admission{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if class := c.Query("class"); class != "" {
		query = query.Where("class = ?", class)
	}
	var list []models.Admission
	if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, list)
}

// Get returns one admission enquiry
// @Summary Get admission enquiry
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "admission id"
// @Success 200 {object} Response{data=models.Admission} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/admissions/{id} [get]
func (h *AdmissionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var admission models.Admission
	if err := database.DB.First(&admission, id).Error; err != nil {
		NotFound(c, "admission enquiry not found")
		return
	}
	Success(c, admission)
}

// Create submits an admission enquiry from the public site, no auth
// @Summary Submit admission enquiry
// @Tags admissions
// @Accept json
// @Produce json
// @Param request body CreateAdmissionRequest true "enquiry"
// @Success 200 {object} Response{data=models.Admission} "submitted"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/admissions [post]
func (h *AdmissionHandler) Create(c *gin.Context) {
	var req CreateAdmissionRequest
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
	admission := models.Admission{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Gender:           req.Gender,
		DateOfBirth:      dob,
		Religion:         req.Religion,
		Category:         category,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		FatherName:       req.FatherName,
		MotherName:       req.MotherName,
		FatherOccupation: req.FatherOccupation,
		GuardianPhone:    req.GuardianPhone,
		PreviousSchool:   req.PreviousSchool,
		Class:            req.Class,
		Status:           models.AdmissionStatusPending,
	}
	if err := database.DB.Create(&admission).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to submit enquiry"))
		return
	}
	SuccessWithMessage(c, "admission enquiry submitted", admission)
}

// UpdateStatus moves an enquiry through the review workflow.
// Approved and Rejected decisions are emailed to the applicant when an
// address is on file; a send failure does not fail the request.
// @Summary Update admission status
// @Tags admissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "admission id"
// @Param request body UpdateAdmissionStatusRequest true "decision"
// @Success 200 {object} Response{data=models.Admission} "updated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/admissions/{id}/status [put]
func (h *AdmissionHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var admission models.Admission
	if err := database.DB.First(&admission, id).Error; err != nil {
		NotFound(c, "admission enquiry not found")
		return
	}
	var req UpdateAdmissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	updates := map[string]interface{}{"status": req.Status}
	if req.Remarks != "" {
		updates["remarks"] = req.Remarks
	}
	if err := database.DB.Model(&admission).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update status"))
		return
	}
	database.DB.First(&admission, admission.ID)

	if admission.Email != "" &&
		(req.Status == models.AdmissionStatusApproved || req.Status == models.AdmissionStatusRejected) {
		go func(a models.Admission) {
			name := a.FirstName + " " + a.LastName
			if err := h.email.SendAdmissionDecision(a.Email, name, a.Status, a.Remarks); err != nil {
				log.Printf("admission decision email to %s failed: %v", a.Email, err)
			}
		}(admission)
	}

	SuccessWithMessage(c, "admission status updated", admission)
}

// Delete removes an admission enquiry (soft delete)
// @Summary Delete admission enquiry
// @Tags admissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "admission id"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/admissions/{id} [delete]
func (h *AdmissionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var admission models.Admission
	if err := database.DB.First(&admission, id).Error; err != nil {
		NotFound(c, "admission enquiry not found")
		return
	}
	if err := database.DB.Delete(&admission).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete enquiry"))
		return
	}
	SuccessWithMessage(c, "admission enquiry deleted", nil)
}
