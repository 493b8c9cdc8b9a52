package api

import (
	"errors"
	"time"

	"schoolms/database"
	"schoolms/models"
	"schoolms/service"

	"github.com/gin-gonic/gin"
)

// FeeHandler fee record and payment endpoints
type FeeHandler struct {
	ledger *service.LedgerService
}

// NewFeeHandler creates a fee handler
func NewFeeHandler() *FeeHandler {
	return &FeeHandler{ledger: service.NewLedgerService(database.DB)}
}

type CreateFeeRequest struct {
	StudentID uint    `json:"student_id" binding:"required"`
	ClassID   *uint   `json:"class_id"`
	FeeType   string  `json:"fee_type" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Discount  float64 `json:"discount" binding:"omitempty,gte=0"`
	Fine      float64 `json:"fine" binding:"omitempty,gte=0"`
	Month     string  `json:"month" binding:"required"`
	Year      int     `json:"year" binding:"required"`
	Notes     string  `json:"notes"`
}

type UpdateFeeRequest struct {
	FeeType  string   `json:"fee_type"`
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0"`
	Discount *float64 `json:"discount" binding:"omitempty,gte=0"`
	Fine     *float64 `json:"fine" binding:"omitempty,gte=0"`
	Month    string   `json:"month"`
	Year     *int     `json:"year"`
	Notes    string   `json:"notes"`
}

type PayFeeRequest struct {
	PaidAmount    float64 `json:"paid_amount" binding:"required,gt=0" example:"5000"`
	PaymentMode   string  `json:"payment_mode" binding:"omitempty,oneof=Cash Card 'Bank Transfer' UPI Cheque"`
	TransactionID string  `json:"transaction_id"`
	PaymentDate   string  `json:"payment_date"` // 2006-01-02
}

// List lists fee records with optional filters
// @Summary List fees
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "student filter"
// @Param class_id query int false "class filter"
// @Param month query string false "month filter"
// @Param year query int false "year filter"
// @Param status query string false "fee status filter"
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(20)
// @Success 200 {object} Response{data=PageResponse{list=[]models.Fee}} "ok"
// @Router /api/v1/fees [get]
func (h *FeeHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	query := database.DB.Model(&models.Fee{}).Preload("Student").Preload("Class")
	if studentID := c.Query("student_id"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	if classID := c.Query("class_id"); classID != "" {
		query = query.Where("class_id = ?", classID)
	}
	if month := c.Query("month"); month != "" {
		query = query.Where("month = ?", month)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("year = ?", year)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)
	var list []models.Fee
	if err := query.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, PageResponse{Total: total, Page: page, PageSize: pageSize, List: list})
}

// Get returns one fee record
// @Summary Get fee
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "fee id"
// @Success 200 {object} Response{data=models.Fee} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/fees/{id} [get]
func (h *FeeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var fee models.Fee
	if err := database.DB.Preload("Student").Preload("Class").First(&fee, id).Error; err != nil {
		NotFound(c, "fee record not found")
		return
	}
	Success(c, fee)
}

// Create charges a fee, allocating a unique receipt number
// @Summary Create fee
// @Description Creates a fee charge with a sequence-allocated receipt number
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateFeeRequest true "fee charge"
// @Success 200 {object} Response{data=models.Fee} "created"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/fees [post]
func (h *FeeHandler) Create(c *gin.Context) {
	var req CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	fee := models.Fee{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		FeeType:   req.FeeType,
		Amount:    req.Amount,
		Discount:  req.Discount,
		Fine:      req.Fine,
		Month:     req.Month,
		Year:      req.Year,
		Notes:     req.Notes,
	}
	if err := h.ledger.CreateFee(&fee); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			NotFound(c, "student not found")
			return
		}
		BadRequest(c, SafeErrorMessage(err, "failed to create fee record"))
		return
	}
	SuccessWithMessage(c, "fee record created", fee)
}

// Update edits a fee charge. Paid amount and status are not editable here,
// they only move through the payment path.
// @Summary Update fee
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "fee id"
// @Param request body UpdateFeeRequest true "fields to update"
// @Success 200 {object} Response{data=models.Fee} "updated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/fees/{id} [put]
func (h *FeeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var fee models.Fee
	if err := database.DB.First(&fee, id).Error; err != nil {
		NotFound(c, "fee record not found")
		return
	}
	var req UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	updates := map[string]interface{}{}
	if req.FeeType != "" {
		updates["fee_type"] = req.FeeType
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
		fee.Amount = *req.Amount
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
		fee.Discount = *req.Discount
	}
	if req.Fine != nil {
		updates["fine"] = *req.Fine
		fee.Fine = *req.Fine
	}
	if req.Month != "" {
		updates["month"] = req.Month
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Notes != "" {
		updates["notes"] = req.Notes
	}
	// amount/fine/discount edits can move the paid threshold, re-derive
	updates["status"] = fee.StatusFor(fee.PaidAmount)
	if err := database.DB.Model(&fee).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update fee record"))
		return
	}
	database.DB.First(&fee, fee.ID)
	SuccessWithMessage(c, "fee record updated", fee)
}

// Delete removes a fee record (soft delete)
// @Summary Delete fee
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "fee id"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/fees/{id} [delete]
func (h *FeeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var fee models.Fee
	if err := database.DB.First(&fee, id).Error; err != nil {
		NotFound(c, "fee record not found")
		return
	}
	if err := database.DB.Delete(&fee).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete fee record"))
		return
	}
	SuccessWithMessage(c, "fee record deleted", nil)
}

// StudentHistory lists a student's fee records
// @Summary Student fee history
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "student id"
// @Success 200 {object} Response{data=[]models.Fee} "ok"
// @Router /api/v1/fees/student/{studentId} [get]
func (h *FeeHandler) StudentHistory(c *gin.Context) {
	studentID := c.Param("studentId")
	var fees []models.Fee
	if err := database.DB.Where("student_id = ?", studentID).
		Order("year DESC, month DESC").
		Find(&fees).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, fees)
}

// Pending lists all fee records not fully paid
// @Summary Pending fees
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Fee} "ok"
// @Router /api/v1/fees/pending [get]
func (h *FeeHandler) Pending(c *gin.Context) {
	var fees []models.Fee
	if err := database.DB.Preload("Student").Preload("Class").
		Where("status <> ?", models.FeeStatusPaid).
		Order("created_at DESC").
		Find(&fees).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, fees)
}

// Pay applies a payment to a fee record
// @Summary Pay fee
// @Description Applies a payment to the fee record and posts the matching income ledger entry in one transaction
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "fee id"
// @Param request body PayFeeRequest true "payment"
// @Success 200 {object} Response{data=models.Fee} "paid"
// @Failure 400 {object} Response "bad request"
// @Failure 404 {object} Response "fee record not found"
// @Router /api/v1/fees/{id}/pay [post]
func (h *FeeHandler) Pay(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PayFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	in := service.PaymentInput{
		PaidAmount:    req.PaidAmount,
		PaymentMode:   req.PaymentMode,
		TransactionID: req.TransactionID,
	}
	if req.PaymentDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.PaymentDate, time.Local)
		if err != nil {
			BadRequest(c, "payment_date must be formatted as 2006-01-02")
			return
		}
		in.PaymentDate = &t
	}
	fee, err := h.ledger.ApplyPayment(id, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFeeNotFound):
			NotFound(c, "fee record not found")
		case errors.Is(err, service.ErrStudentNotFound):
			NotFound(c, "student not found")
		case errors.Is(err, service.ErrInvalidAmount):
			BadRequest(c, err.Error())
		default:
			InternalError(c, SafeErrorMessage(err, "failed to apply payment"))
		}
		return
	}
	SuccessWithMessage(c, "payment recorded", fee)
}

// Unposted lists fee records whose payments have no matching income entries
// @Summary Reconciliation sweep
// @Description Lists fee records whose cumulative payments exceed their posted income entries
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Fee} "ok"
// @Router /api/v1/fees/unposted [get]
func (h *FeeHandler) Unposted(c *gin.Context) {
	fees, err := h.ledger.UnpostedPayments()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, fees)
}
