package api

import (
	"time"

	"schoolms/database"
	"schoolms/models"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler manual expense ledger endpoints
type ExpenseHandler struct{}

// NewExpenseHandler creates an expense handler
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

type CreateExpenseRequest struct {
	Title       string  `json:"title" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date" binding:"required"` // 2006-01-02
	PaymentMode string  `json:"payment_mode" binding:"omitempty,oneof=Cash Card 'Bank Transfer' UPI Cheque"`
	Vendor      string  `json:"vendor"`
}

type UpdateExpenseRequest struct {
	Title       string   `json:"title"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	PaymentMode string   `json:"payment_mode" binding:"omitempty,oneof=Cash Card 'Bank Transfer' UPI Cheque"`
	Vendor      string   `json:"vendor"`
}

// List lists expense entries
// @Summary List expenses
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param category query string false "category filter"
// @Param start_date query string false "start date (2006-01-02)"
// @Param end_date query string false "end date (2006-01-02)"
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(20)
// @Success 200 {object} Response{data=PageResponse{list=[]models.Expense}} "ok"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	query := database.DB.Model(&models.Expense{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query = dateRangeFilter(c, query, "date")

	var total int64
	query.Count(&total)
	var list []models.Expense
	if err := query.Order("date DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, PageResponse{Total: total, Page: page, PageSize: pageSize, List: list})
}

// Get returns one expense entry
// @Summary Get expense
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path int true "expense id"
// @Success 200 {object} Response{data=models.Expense} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var ex models.Expense
	if err := database.DB.First(&ex, id).Error; err != nil {
		NotFound(c, "expense entry not found")
		return
	}
	Success(c, ex)
}

// Create records a manual expense entry
// @Summary Create expense
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "expense entry"
// @Success 200 {object} Response{data=models.Expense} "created"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
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
	ex := models.Expense{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
		PaymentMode: mode,
		Vendor:      req.Vendor,
	}
	if err := database.DB.Create(&ex).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create expense entry"))
		return
	}
	SuccessWithMessage(c, "expense entry created", ex)
}

// Update updates a manual expense entry
// @Summary Update expense
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "expense id"
// @Param request body UpdateExpenseRequest true "fields to update"
// @Success 200 {object} Response{data=models.Expense} "updated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var ex models.Expense
	if err := database.DB.First(&ex, id).Error; err != nil {
		NotFound(c, "expense entry not found")
		return
	}
	var req UpdateExpenseRequest
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
	if req.Vendor != "" {
		updates["vendor"] = req.Vendor
	}
	if err := database.DB.Model(&ex).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update expense entry"))
		return
	}
	database.DB.First(&ex, ex.ID)
	SuccessWithMessage(c, "expense entry updated", ex)
}

// Delete removes an expense entry (soft delete)
// @Summary Delete expense
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path int true "expense id"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var ex models.Expense
	if err := database.DB.First(&ex, id).Error; err != nil {
		NotFound(c, "expense entry not found")
		return
	}
	if err := database.DB.Delete(&ex).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete expense entry"))
		return
	}
	SuccessWithMessage(c, "expense entry deleted", nil)
}
