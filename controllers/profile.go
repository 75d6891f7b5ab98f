package controllers

import (
	"net/http"

	"lifetrack-backend/config"
	"lifetrack-backend/models"
	"lifetrack-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateNotificationsInput struct {
	Channel string `json:"channel" binding:"required,oneof=email sms whatsapp"`
	Phone   string `json:"phone"`
}

func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":      user.Username,
		"email":         user.Email,
		"phone":         user.Phone,
		"notifyChannel": user.NotifyChannel,
	})
}

// UpdateNotifications sets how scheduled reminders are delivered. SMS and
// WhatsApp require a phone number in international format.
func UpdateNotifications(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input UpdateNotificationsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Channel != models.ChannelEmail {
		if input.Phone == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Phone number required for "+input.Channel)
			return
		}
		if !utils.ValidatePhone(input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"notify_channel": input.Channel,
			"phone":          input.Phone,
		}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}
