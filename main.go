package main

import (
	"fmt"
	"log"
	"os"

	"renewal-tracker-backend/config"
	"renewal-tracker-backend/controllers"
	"renewal-tracker-backend/models"
	"renewal-tracker-backend/repositories"
	"renewal-tracker-backend/routes"
	"renewal-tracker-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if err := db.AutoMigrate(&models.Plan{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	planRepo := repositories.NewPlanRepository(db)
	mailer := services.NewMailer(services.NewMailConfigFromEnv())
	reminderService := services.NewReminderService(planRepo, mailer)

	// Daily 9 AM reminder pass
	reminderService.StartScheduler()

	r := routes.SetupRouter(
		&controllers.PlanController{Repo: planRepo},
		&controllers.ReminderController{Service: reminderService},
	)
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
