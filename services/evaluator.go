package services

import (
	"time"

	"renewal-tracker-backend/models"
	"renewal-tracker-backend/utils"
)

// ShouldSendReminder decides whether a plan gets a reminder today.
// Eligible when the renewal is today or within the plan's lead window,
// and no reminder has gone out yet this calendar day. Off-by-one here
// means missed or duplicate emails, so both bounds are inclusive and the
// same-day check is strict.
func ShouldSendReminder(today time.Time, plan models.Plan) bool {
	daysUntil := utils.DaysUntil(today, plan.RenewalDate)
	if daysUntil < 0 || daysUntil > plan.ReminderDays {
		return false
	}
	if plan.LastReminderSent == nil {
		return true
	}
	// The marker comes back from the date column as UTC midnight;
	// compare calendar days in today's location, not instants.
	return utils.DayIn(*plan.LastReminderSent, today.Location()).Before(utils.BeginningOfDay(today))
}
