package routes

import (
	"renewal-tracker-backend/config"
	"renewal-tracker-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(plans *controllers.PlanController, reminders *controllers.ReminderController) *gin.Engine {
	r := gin.Default()

	// Open CORS like the hosted frontend expects.
	r.Use(cors.Default())
	r.Use(config.PerformanceLogger())

	r.GET("/", controllers.HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/plans", plans.GetPlans)
		api.POST("/plans", plans.CreatePlan)
		api.PUT("/plans/:id", plans.UpdatePlan)
		api.DELETE("/plans/:id", plans.DeletePlan)

		api.POST("/check-reminders", reminders.CheckReminders)
	}

	return r
}
