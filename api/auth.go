package api

import (
	"schoolms/config"
	"schoolms/database"
	"schoolms/middleware"
	"schoolms/models"

	"github.com/gin-gonic/gin"
)

// AuthHandler authentication endpoints
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin teacher staff"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates a user and issues a JWT
// @Summary Login
// @Description Authenticate with username and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} Response{data=LoginResponse} "login ok"
// @Failure 400 {object} Response "bad request"
// @Failure 401 {object} Response "invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "invalid username or password")
		return
	}
	if !user.CheckPassword(req.Password) {
		Unauthorized(c, "invalid username or password")
		return
	}
	token, err := middleware.GenerateToken(user.ID, user.Username, user.Role, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to issue token"))
		return
	}
	Success(c, LoginResponse{Token: token, User: user})
}

// Register creates a new staff account (admin only)
// @Summary Register user
// @Description Create a new login account, admin only
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterRequest true "account"
// @Success 200 {object} Response{data=models.User} "created"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	var cnt int64
	database.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&cnt)
	if cnt > 0 {
		BadRequest(c, "username already exists")
		return
	}
	role := req.Role
	if role == "" {
		role = models.RoleStaff
	}
	user := models.User{
		Username: req.Username,
		Role:     role,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if err := user.SetPassword(req.Password); err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create user"))
		return
	}
	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create user"))
		return
	}
	SuccessWithMessage(c, "user created", user)
}

// GetProfile returns the authenticated user
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "ok"
// @Failure 401 {object} Response "unauthorized"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "user not found")
		return
	}
	Success(c, user)
}

// ChangePassword updates the authenticated user's password
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "passwords"
// @Success 200 {object} Response "updated"
// @Failure 400 {object} Response "bad request"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "user not found")
		return
	}
	if !user.CheckPassword(req.OldPassword) {
		BadRequest(c, "old password is incorrect")
		return
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update password"))
		return
	}
	if err := database.DB.Model(&user).Update("password", user.Password).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update password"))
		return
	}
	SuccessWithMessage(c, "password updated", nil)
}
