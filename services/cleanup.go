// services/cleanup.go
package services

import (
	"log"
	"time"

	"lifetrack-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const logRetentionDays = 30

// StartCleanupJob schedules a nightly purge of old notification logs.
func StartCleanupJob(db *gorm.DB) *cron.Cron {
	c := cron.New()

	// Run every day at 3 AM
	c.AddFunc("0 3 * * *", func() {
		cutoff := time.Now().AddDate(0, 0, -logRetentionDays)
		result := db.Unscoped().
			Where("sent_at < ?", cutoff).
			Delete(&models.NotificationLog{})
		if result.Error != nil {
			log.Printf("Notification log cleanup failed: %v", result.Error)
			return
		}
		if result.RowsAffected > 0 {
			log.Printf("Cleaned up %d notification logs older than %d days", result.RowsAffected, logRetentionDays)
		}
	})

	c.Start()
	log.Println("Notification log cleanup job scheduled")
	return c
}
