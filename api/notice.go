package api

import (
	"time"

	"schoolms/database"
	"schoolms/middleware"
	"schoolms/models"

	"github.com/gin-gonic/gin"
)

// NoticeHandler notice endpoints
type NoticeHandler struct{}

// NewNoticeHandler creates a notice handler
func NewNoticeHandler() *NoticeHandler {
	return &NoticeHandler{}
}

type CreateNoticeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image"`
	NoticeType  string `json:"notice_type" binding:"omitempty,oneof=General Academic Event Holiday Exam Fee Important"`
	PublishDate string `json:"publish_date"` // 2006-01-02, defaults to today
	ExpiryDate  string `json:"expiry_date"`
	IsPublic    *bool  `json:"is_public"`
}

type UpdateNoticeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	NoticeType  string `json:"notice_type" binding:"omitempty,oneof=General Academic Event Holiday Exam Fee Important"`
	PublishDate string `json:"publish_date"`
	ExpiryDate  string `json:"expiry_date"`
	IsPublic    *bool  `json:"is_public"`
	IsActive    *bool  `json:"is_active"`
}

// List lists notices for the admin dashboard
// @Summary List notices
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param notice_type query string false "type filter"
// @Param active query bool false "active filter"
// @Success 200 {object} Response{data=[]models.Notice} "ok"
// @Router /api/v1/notices [get]
func (h *NoticeHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Notice{})
	if noticeType := c.Query("notice_type"); noticeType != "" {
		query = query.Where("notice_type = ?", noticeType)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	var list []models.Notice
	if err := query.Order("publish_date DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, list)
}

// ListPublic lists active public notices for the marketing site, no auth
// @Summary Public notices
// @Tags notices
// @Produce json
// @Success 200 {object} Response{data=[]models.Notice} "ok"
// @Router /api/v1/notices/public [get]
func (h *NoticeHandler) ListPublic(c *gin.Context) {
	now := time.Now()
	var list []models.Notice
	if err := database.DB.
		Where("is_public = ? AND is_active = ?", true, true).
		Where("expiry_date IS NULL OR expiry_date >= ?", now).
		Order("publish_date DESC").
		Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, list)
}

// Get returns one notice
// @Summary Get notice
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param id path int true "notice id"
// @Success 200 {object} Response{data=models.Notice} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/notices/{id} [get]
func (h *NoticeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var notice models.Notice
	if err := database.DB.First(&notice, id).Error; err != nil {
		NotFound(c, "notice not found")
		return
	}
	Success(c, notice)
}

// Create publishes a notice
// @Summary Create notice
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateNoticeRequest true "notice"
// @Success 200 {object} Response{data=models.Notice} "created"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/notices [post]
func (h *NoticeHandler) Create(c *gin.Context) {
	var req CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	publishDate := time.Now()
	if req.PublishDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.PublishDate, time.Local)
		if err != nil {
			BadRequest(c, "publish_date must be formatted as 2006-01-02")
			return
		}
		publishDate = t
	}
	noticeType := req.NoticeType
	if noticeType == "" {
		noticeType = models.NoticeTypeGeneral
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	userID := middleware.GetCurrentUserID(c)
	notice := models.Notice{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		NoticeType:  noticeType,
		PublishDate: publishDate,
		IsPublic:    isPublic,
		IsActive:    true,
	}
	if userID > 0 {
		notice.CreatedBy = &userID
	}
	if req.ExpiryDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.ExpiryDate, time.Local)
		if err != nil {
			BadRequest(c, "expiry_date must be formatted as 2006-01-02")
			return
		}
		notice.ExpiryDate = &t
	}
	if err := database.DB.Create(&notice).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create notice"))
		return
	}
	SuccessWithMessage(c, "notice created", notice)
}

// Update updates a notice
// @Summary Update notice
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "notice id"
// @Param request body UpdateNoticeRequest true "fields to update"
// @Success 200 {object} Response{data=models.Notice} "updated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/notices/{id} [put]
func (h *NoticeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var notice models.Notice
	if err := database.DB.First(&notice, id).Error; err != nil {
		NotFound(c, "notice not found")
		return
	}
	var req UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.NoticeType != "" {
		updates["notice_type"] = req.NoticeType
	}
	if req.PublishDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.PublishDate, time.Local)
		if err != nil {
			BadRequest(c, "publish_date must be formatted as 2006-01-02")
			return
		}
		updates["publish_date"] = t
	}
	if req.ExpiryDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.ExpiryDate, time.Local)
		if err != nil {
			BadRequest(c, "expiry_date must be formatted as 2006-01-02")
			return
		}
		updates["expiry_date"] = t
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := database.DB.Model(&notice).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update notice"))
		return
	}
	database.DB.First(&notice, notice.ID)
	SuccessWithMessage(c, "notice updated", notice)
}

// Delete removes a notice (soft delete)
// @Summary Delete notice
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param id path int true "notice id"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/notices/{id} [delete]
func (h *NoticeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var notice models.Notice
	if err := database.DB.First(&notice, id).Error; err != nil {
		NotFound(c, "notice not found")
		return
	}
	if err := database.DB.Delete(&notice).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete notice"))
		return
	}
	SuccessWithMessage(c, "notice deleted", nil)
}
