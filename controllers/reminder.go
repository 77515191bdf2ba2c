// controllers/reminder.go
package controllers

import (
	"net/http"
	"time"

	"renewal-tracker-backend/services"
	"renewal-tracker-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReminderController exposes the manual dispatcher trigger.
type ReminderController struct {
	Service *services.ReminderService
}

// CheckReminders runs one dispatcher pass synchronously. Individual
// delivery failures do not fail the request; only a storage failure
// while listing candidates does.
func (rc *ReminderController) CheckReminders(c *gin.Context) {
	sent, err := rc.Service.RunOnce(time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check reminders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reminder check completed",
		"sent":    sent,
	})
}
