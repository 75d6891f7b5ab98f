package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"lifetrack-backend/config"
	"lifetrack-backend/models"
	"lifetrack-backend/routes"
	"lifetrack-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Schedule{},
		&models.NotificationLog{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	store := services.NewScheduleStore(config.DB)
	notifier := services.NewNotificationService(config.DB)

	// Background clock: evaluates every user's schedule once per minute.
	scheduler := services.NewSchedulerService(store, notifier)
	go scheduler.Run(context.Background())

	services.StartCleanupJob(config.DB)

	r := routes.SetupRouter(store, notifier)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
