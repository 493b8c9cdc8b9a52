package api

import (
	"time"

	"schoolms/database"
	"schoolms/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IncomeHandler manual income ledger endpoints
type IncomeHandler struct{}

// NewIncomeHandler creates an income handler
func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

type CreateIncomeRequest struct {
	Title         string  `json:"title" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0" example:"5000.00"`
	Category      string  `json:"category" binding:"required"`
	Description   string  `json:"description"`
	Date          string  `json:"date" binding:"required"` // 2006-01-02
	PaymentMode   string  `json:"payment_mode" binding:"omitempty,oneof=Cash Card 'Bank Transfer' UPI Cheque"`
	TransactionID string  `json:"transaction_id"`
}

type UpdateIncomeRequest struct {
	Title         string   `json:"title"`
	Amount        *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Date          string   `json:"date"`
	PaymentMode   string   `json:"payment_mode" binding:"omitempty,oneof=Cash Card 'Bank Transfer' UPI Cheque"`
	TransactionID string   `json:"transaction_id"`
}

// List lists income entries
// @Summary List incomes
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param category query string false "category filter"
// @Param start_date query string false "start date (2006-01-02)"
// @Param end_date query string false "end date (2006-01-02)"
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(20)
// @Success 200 {object} Response{data=PageResponse{list=[]models.Income}} "ok"
// @Router /api/v1/incomes [get]
func (h *IncomeHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	query := database.DB.Model(&models.Income{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query = dateRangeFilter(c, query, "date")

	var total int64
	query.Count(&total)
	var list []models.Income
	if err := query.Order("date DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, PageResponse{Total: total, Page: page, PageSize: pageSize, List: list})
}

// Get returns one income entry
// @Summary Get income
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path int true "income id"
// @Success 200 {object} Response{data=models.Income} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/incomes/{id} [get]
func (h *IncomeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var in models.Income
	if err := database.DB.First(&in, id).Error; err != nil {
		NotFound(c, "income entry not found")
		return
	}
	Success(c, in)
}

// Create records a manual income entry
// @Summary Create income
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIncomeRequest true "income entry"
// @Success 200 {object} Response{data=models.Income} "created"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		BadRequest(c, "date must be formatted as 2006-01-02")
		return
	}
	mode := req.PaymentMode
	if mode == "" {
		mode = models.PaymentModeCash
	}
	in := models.Income{
		Title:         req.Title,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Date:          date,
		PaymentMode:   mode,
		TransactionID: req.TransactionID,
	}
	if err := database.DB.Create(&in).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create income entry"))
		return
	}
	SuccessWithMessage(c, "income entry created", in)
}

// Update updates a manual income entry
// @Summary Update income
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "income id"
// @Param request body UpdateIncomeRequest true "fields to update"
// @Success 200 {object} Response{data=models.Income} "updated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/incomes/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var in models.Income
	if err := database.DB.First(&in, id).Error; err != nil {
		NotFound(c, "income entry not found")
		return
	}
	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Date != "" {
		date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			BadRequest(c, "date must be formatted as 2006-01-02")
			return
		}
		updates["date"] = date
	}
	if req.PaymentMode != "" {
		updates["payment_mode"] = req.PaymentMode
	}
	if req.TransactionID != "" {
		updates["transaction_id"] = req.TransactionID
	}
	if err := database.DB.Model(&in).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update income entry"))
		return
	}
	database.DB.First(&in, in.ID)
	SuccessWithMessage(c, "income entry updated", in)
}

// Delete removes an income entry (soft delete)
// @Summary Delete income
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path int true "income id"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/incomes/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var in models.Income
	if err := database.DB.First(&in, id).Error; err != nil {
		NotFound(c, "income entry not found")
		return
	}
	if err := database.DB.Delete(&in).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete income entry"))
		return
	}
	SuccessWithMessage(c, "income entry deleted", nil)
}

// dateRangeFilter applies optional start_date/end_date query filters on column
func dateRangeFilter(c *gin.Context, query *gorm.DB, column string) *gorm.DB {
	if start := c.Query("start_date"); start != "" {
		if t, err := time.ParseInLocation("2006-01-02", start, time.Local); err == nil {
			query = query.Where(column+" >= ?", t)
		}
	}
	if end := c.Query("end_date"); end != "" {
		if t, err := time.ParseInLocation("2006-01-02", end, time.Local); err == nil {
			query = query.Where(column+" < ?", t.AddDate(0, 0, 1))
		}
	}
	return query
}
