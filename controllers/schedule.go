// controllers/schedule.go
package controllers

import (
	"errors"
	"net/http"

	"lifetrack-backend/models"
	"lifetrack-backend/services"
	"lifetrack-backend/utils"

	"github.com/gin-gonic/gin"
)

// SyncScheduleInput defines the expected JSON structure. The app sends the
// whole schedule whenever it changes; the previous one is overwritten.
type SyncScheduleInput struct {
	Timezone    string                `json:"timezone"`
	Reminders   models.ReminderList   `json:"reminders"`
	WeeklyTasks models.WeeklyTaskList `json:"weeklyTasks"`
}

type ScheduleController struct {
	Store *services.ScheduleStore
}

func NewScheduleController(store *services.ScheduleStore) *ScheduleController {
	return &ScheduleController{Store: store}
}

// Sync replaces the authenticated user's schedule wholesale.
func (s *ScheduleController) Sync(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email not found in context")
		return
	}

	var input SyncScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Reject obviously broken fire-times up front; the matcher compares
	// minute strings exactly, so a malformed time would just never fire.
	for _, r := range input.Reminders {
		for _, t := range r.Timers {
			if !utils.ValidateTimeOfDay(t.Time) {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder time: "+t.Time)
				return
			}
		}
	}
	for _, task := range input.WeeklyTasks {
		if !utils.ValidateTimeOfDay(task.ReminderTime) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid task time: "+task.ReminderTime)
			return
		}
	}

	err := s.Store.Replace(c.Request.Context(), email.(string), input.Timezone, input.Reminders, input.WeeklyTasks)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to sync schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule Synced!"})
}

// Get returns the authenticated user's schedule.
func (s *ScheduleController) Get(c *gin.Context) {
	email, exists := c.Get("email")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Email not found in context")
		return
	}

	schedule, err := s.Store.GetByEmail(c.Request.Context(), email.(string))
	if err != nil {
		if errors.Is(err, services.ErrScheduleNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"timezone":    schedule.Timezone,
		"reminders":   schedule.Reminders,
		"weeklyTasks": schedule.WeeklyTasks,
	})
}
