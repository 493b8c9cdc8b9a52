package api

import (
	"schoolms/database"
	"schoolms/models"

	"github.com/gin-gonic/gin"
)

// ClassHandler class endpoints
type ClassHandler struct{}

// NewClassHandler creates a class handler
func NewClassHandler() *ClassHandler {
	return &ClassHandler{}
}

type CreateClassRequest struct {
	Name      string                `json:"name" binding:"required"`
	Section   string                `json:"section" binding:"required"`
	TeacherID *uint                 `json:"teacher_id"`
	Subjects  []models.ClassSubject `json:"subjects"`
	Session   string                `json:"session" binding:"required"`
}

type UpdateClassRequest struct {
	Name      string                `json:"name"`
	Section   string                `json:"section"`
	TeacherID *uint                 `json:"teacher_id"`
	Subjects  []models.ClassSubject `json:"subjects"`
	Session   string                `json:"session"`
}

// List lists classes
// @Summary List classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param session query string false "session filter"
// @Success 200 {object} Response{data=[]models.SchoolClass} "ok"
// @Router /api/v1/classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.SchoolClass{}).Preload("Teacher")
	if session := c.Query("session"); session != "" {
		query = query.Where("session = ?", session)
	}
	var list []models.SchoolClass
	if err := query.Order("name, section").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "query failed"))
		return
	}
	Success(c, list)
}

// Get returns one class
// @Summary Get class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Success 200 {object} Response{data=models.SchoolClass} "ok"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/classes/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var class models.SchoolClass
	if err := database.DB.Preload("Teacher").First(&class, id).Error; err != nil {
		NotFound(c, "class not found")
		return
	}
	Success(c, class)
}

// Create adds a class
// @Summary Create class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateClassRequest true "class"
// @Success 200 {object} Response{data=models.SchoolClass} "created"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	class := models.SchoolClass{
		Name:      req.Name,
		Section:   req.Section,
		TeacherID: req.TeacherID,
		Subjects:  req.Subjects,
		Session:   req.Session,
	}
	if err := database.DB.Create(&class).Error; err != nil {
		BadRequest(c, SafeErrorMessage(err, "failed to create class, name/section may already exist"))
		return
	}
	SuccessWithMessage(c, "class created", class)
}

// Update updates a class
// @Summary Update class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Param request body UpdateClassRequest true "fields to update"
// @Success 200 {object} Response{data=models.SchoolClass} "updated"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/classes/{id} [put]
func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var class models.SchoolClass
	if err := database.DB.First(&class, id).Error; err != nil {
		NotFound(c, "class not found")
		return
	}
	var req UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.Name != "" {
		class.Name = req.Name
	}
	if req.Section != "" {
		class.Section = req.Section
	}
	if req.TeacherID != nil {
		class.TeacherID = req.TeacherID
	}
	if req.Subjects != nil {
		class.Subjects = req.Subjects
	}
	if req.Session != "" {
		class.Session = req.Session
	}
	if err := database.DB.Save(&class).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update class"))
		return
	}
	SuccessWithMessage(c, "class updated", class)
}

// Delete removes a class (soft delete)
// @Summary Delete class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "class id"
// @Success 200 {object} Response "deleted"
// @Failure 404 {object} Response "not found"
// @Router /api/v1/classes/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var class models.SchoolClass
	if err := database.DB.First(&class, id).Error; err != nil {
		NotFound(c, "class not found")
		return
	}
	if err := database.DB.Delete(&class).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete class"))
		return
	}
	SuccessWithMessage(c, "class deleted", nil)
}
