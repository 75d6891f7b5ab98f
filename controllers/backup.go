// controllers/backup.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"lifetrack-backend/services"
	"lifetrack-backend/utils"

	"github.com/gin-gonic/gin"
)

// WeeklyBackupInput carries the rendered report the app wants archived before
// the weekly reset clears its local data.
type WeeklyBackupInput struct {
	To         string `json:"to" binding:"required,email"`
	HTMLReport string `json:"htmlReport" binding:"required"`
}

type BackupController struct {
	Notifier *services.NotificationService
}

func NewBackupController(notifier *services.NotificationService) *BackupController {
	return &BackupController{Notifier: notifier}
}

// SendWeeklyBackup emails last week's report as an attachment.
func (b *BackupController) SendWeeklyBackup(c *gin.Context) {
	var input WeeklyBackupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	today := time.Now()
	prevMon, prevSun := utils.PreviousWeekRange(today)
	lastWeekNum := utils.WeekNumber(today) - 1

	dateRange := fmt.Sprintf("%d – %s", prevMon.Day(), prevSun.Format("2 Jan 2006"))
	subject := fmt.Sprintf("Your Week %d Report & Reset 🗓️", lastWeekNum)
	body := fmt.Sprintf(
		"Your Week %d records (%s) have been cleared to keep your tracker fresh. Last week's full wellness report is attached.",
		lastWeekNum, dateRange,
	)
	filename := fmt.Sprintf("LifeTrack_Week%d_Report.html", lastWeekNum)

	err := b.Notifier.SendBackup(
		input.To,
		subject,
		body,
		"Weekly Data Reset",
		filename,
		[]byte(input.HTMLReport),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
