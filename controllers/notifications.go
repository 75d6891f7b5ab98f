// controllers/notifications.go
package controllers

import (
	"net/http"
	"strconv"

	"lifetrack-backend/config"
	"lifetrack-backend/models"
	"lifetrack-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetNotificationLogs returns the authenticated user's recent notification
// history, newest first.
func GetNotificationLogs(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email not found in context")
		return
	}

	limit := 50
	if env := c.Query("limit"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	var logs []models.NotificationLog
	if err := config.DB.Where("email = ?", email).
		Order("sent_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notification logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
