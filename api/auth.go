package api

import (
	"budget-tracker/config"
	"budget-tracker/database"
	"budget-tracker/middleware"
	"budget-tracker/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"testuser"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
	Email    string `json:"email" binding:"omitempty,email" example:"test@example.com"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"testuser"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse carries the bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Register creates a new user account
// @Summary Register
// @Description Create a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "registration payload"
// @Success 201 {object} Response{data=models.User} "created"
// @Failure 400 {object} Response "invalid payload or username taken"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, BindingErrorMessage(err))
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		BadRequest(c, "username already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "hashing password failed")
		return
	}

	user := models.User{
		Username: req.Username,
		Password: string(hashed),
		Email:    req.Email,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "creating user failed"))
		return
	}

	Created(c, user)
}

// Login authenticates a user and returns their bearer token
// @Summary Login
// @Description Validate credentials and return the user's bearer token. A
// @Description still-valid stored token is reused; a new one is minted only
// @Description after expiry.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} Response{data=LoginResponse} "token"
// @Failure 400 {object} Response "missing fields or invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, BindingErrorMessage(err))
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		BadRequest(c, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		BadRequest(c, "invalid credentials")
		return
	}

	// Reuse the stored token while it still verifies.
	var stored models.AuthToken
	if err := database.DB.Where("user_id = ?", user.ID).First(&stored).Error; err == nil {
		if _, err := middleware.ParseToken(stored.Key); err == nil {
			Success(c, LoginResponse{Token: stored.Key})
			return
		}
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.Auth.ExpireTime)
	if err != nil {
		InternalError(c, "generating token failed")
		return
	}

	record := models.AuthToken{UserID: user.ID, Key: token}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"key", "updated_at"}),
	}).Create(&record).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "storing token failed"))
		return
	}

	Success(c, LoginResponse{Token: token})
}

// GetProfile returns the authenticated user
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "profile"
// @Failure 401 {object} Response "unauthenticated"
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
