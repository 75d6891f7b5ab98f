package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"lifetrack-backend/config"
	"lifetrack-backend/models"
	"lifetrack-backend/services"
	"lifetrack-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RequestSignupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type VerifySignupInput struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthController handles the OTP signup flow and login.
type AuthController struct {
	Store    *services.ScheduleStore
	Notifier *services.NotificationService
	OTPs     *utils.OTPStore
}

func NewAuthController(store *services.ScheduleStore, notifier *services.NotificationService, otps *utils.OTPStore) *AuthController {
	return &AuthController{Store: store, Notifier: notifier, OTPs: otps}
}

// RequestSignup generates a verification code and emails it. The account is
// not created until the code is verified.
func (a *AuthController) RequestSignup(c *gin.Context) {
	var input RequestSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := utils.NormalizeEmail(input.Email)
	username := strings.TrimSpace(input.Name)

	// Check if email already exists
	var existingUser models.User
	result := config.DB.Where("email = ?", email).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "This email is already registered.")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Check if username already exists
	result = config.DB.Where("LOWER(username) = LOWER(?)", username).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Username taken. Try adding numbers (e.g., Teja29).")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate verification code")
		return
	}

	a.OTPs.Put(email, utils.PendingSignup{
		Code:     otp,
		Username: username,
		Email:    email,
		Password: input.Password,
	})

	if err := a.Notifier.Send(
		email,
		"Verify your LifeTrack Account",
		"Your verification code is "+otp+". Please enter this in the app to create your account.",
		"Email Verification",
	); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send verification email")
		return
	}

	log.Printf("OTP generated for %s", email)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent to your email."})
}

// VerifySignup checks the code and creates the account with an empty schedule.
func (a *AuthController) VerifySignup(c *gin.Context) {
	var input VerifySignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := utils.NormalizeEmail(input.Email)

	pending, ok := a.OTPs.Verify(email, input.OTP)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid OTP code.")
		return
	}

	newUser := models.User{
		Email:    pending.Email,
		Username: pending.Username,
		Password: pending.Password, // Will be hashed in BeforeCreate hook
	}
	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// Initialize an empty schedule
	if err := a.Store.Create(c.Request.Context(), email); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to initialize schedule")
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), newUser.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account created successfully!",
		"token":   token,
	})
}

// Login checks credentials and returns the user's current schedule so the app
// can display it immediately.
func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email and password required")
		return
	}

	email := utils.NormalizeEmail(input.Email)

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found. Please sign up.")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Incorrect password.")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), user.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Update last login
	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	// The login response includes the schedule read from the same store the
	// scheduler evaluates.
	reminders := models.ReminderList{}
	weeklyTasks := models.WeeklyTaskList{}
	schedule, err := a.Store.GetByEmail(c.Request.Context(), email)
	if err == nil {
		reminders = schedule.Reminders
		weeklyTasks = schedule.WeeklyTasks
	} else if !errors.Is(err, services.ErrScheduleNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful!",
		"token":   token,
		"userData": gin.H{
			"username":    user.Username,
			"email":       user.Email,
			"reminders":   reminders,
			"weeklyTasks": weeklyTasks,
		},
	})
}

// Me returns the authenticated user.
func (a *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}
