package api

import (
	"time"

	"schoolms/database"
	"schoolms/models"

	"github.com/gin-gonic/gin"
)

// GalleryHandler gallery endpoints
type GalleryHandler struct{}

// NewGalleryHandler creates a gallery handler
func NewGalleryHandler() *GalleryHandler {
	return &GalleryHandler{}
}

type CreateGalleryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"omitempty,oneof=Event Sports Academic Cultural Other"`
	ImageURL    string `json:"image_url" binding:"required"`
	Date        string `json:"date"` // 2006-01-02, defaults to today
}

type UpdateGalleryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"omitempty,oneof=Event Sports Academic Cultural Other"`
	ImageURL    string `json:"image_url"`
	Date        string `json:"date"`
	IsActive    *bool  `json:"is_active"`
}

// List lists gallery items
// @Summary List gallery items
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param category query string false "category filter"
// @Success 200 {object} Response{data=[]models.Gallery} "ok"
// @Router /api/v1/gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Gallery{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	var list []models.Gallery
	if err := query.Order("date DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, list)
}

// Get returns a single gallery item
// @Summary Get gallery item
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "gallery item ID"
// @Success 200 {object} Response{data=models.Gallery} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/gallery/{id} [get]
func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var item models.Gallery
	if err := database.DB.First(&item, id).Error; err != nil {
		NotFound(c, "gallery item not found")
		return
	}
	Success(c, item)
}

// ListPublic lists active gallery items for the public site, no auth
// @Summary Public gallery
// @Tags gallery
// @Produce json
// @Param category query string false "category filter"
// @Success 200 {object} Response{data=[]models.Gallery} "ok"
// @Router /api/v1/gallery/public [get]
func (h *GalleryHandler) ListPublic(c *gin.Context) {
	query := database.DB.Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	var list []models.Gallery
	if err := query.Order("date DESC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, list)
}

// Create adds a gallery item
// @Summary Create gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGalleryRequest true "item"
// @Success 200 {object} Response{data=models.Gallery} "created"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/gallery [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var req CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	date := time.Now()
	if req.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			BadRequest(c, "date must be formatted as 2006-01-02")
			return
		}
		date = t
	}
	category := req.Category
	if category == "" {
		category = models.GalleryCategoryEvent
	}
	item := models.Gallery{
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		ImageURL:    req.ImageURL,
		Date:        date,
		IsActive:    true,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create gallery item"))
		return
	}
	SuccessWithMessage(c, "gallery item created", item)
}

// Update updates a gallery item
// @Summary Update gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "item id"
// @Param request body UpdateGalleryRequest true "fields to update"
// @Success 200 {object} Response{data=models.Gallery} "updated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/gallery/{id} [put]
func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var item models.Gallery
	if err := database.DB.First(&item, id).Error; err != nil {
		NotFound(c, "gallery item not found")
		return
	}
	var req UpdateGalleryRequest
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
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}
	if req.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			BadRequest(c, "date must be formatted as 2006-01-02")
			return
		}
		updates["date"] = t
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update gallery item"))
		return
	}
	database.DB.First(&item, item.ID)
	SuccessWithMessage(c, "gallery item updated", item)
}

// Delete removes a gallery item (soft delete)
// @Summary Delete gallery item
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "item id"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var item models.Gallery
	if err := database.DB.First(&item, id).Error; err != nil {
		NotFound(c, "gallery item not found")
		return
	}
	if err := database.DB.Delete(&item).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete gallery item"))
		return
	}
	SuccessWithMessage(c, "gallery item deleted", nil)
}
