package routes

import (
	"net/http"
	"time"

	"lifetrack-backend/config"
	"lifetrack-backend/controllers"
	"lifetrack-backend/services"
	"lifetrack-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(store *services.ScheduleStore, notifier *services.NotificationService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://lifetrack-app.vercel.app",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "LifeTrack Backend is successfully running!")
	})

	authCtrl := controllers.NewAuthController(store, notifier, utils.NewOTPStore(10*time.Minute))
	auth := r.Group("/auth")
	{
		auth.POST("/request-signup", authCtrl.RequestSignup)
		auth.POST("/verify-signup", authCtrl.VerifySignup)
		auth.POST("/login", authCtrl.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authCtrl.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Schedule routes
		schedCtrl := controllers.NewScheduleController(store)
		schedule := api.Group("/schedule")
		{
			schedule.POST("/sync", schedCtrl.Sync)
			schedule.GET("", schedCtrl.Get)
		}

		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("/notifications", controllers.UpdateNotifications)
		}

		// Weekly backup route
		backupCtrl := controllers.NewBackupController(notifier)
		api.POST("/backup/weekly", backupCtrl.SendWeeklyBackup)

		// Notification history
		api.GET("/notifications/logs", controllers.GetNotificationLogs)
	}

	return r
}
