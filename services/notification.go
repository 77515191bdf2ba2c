package services

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"renewal-tracker-backend/models"
	"renewal-tracker-backend/utils"
)

type reminderEmailData struct {
	Provider         string
	PhoneNumber      string
	PlanName         string
	RenewalDate      string
	Cost             string
	DaysUntil        int
	DayWord          string
	IsPromotion      bool
	PromotionDetails string
}

const reminderEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9fafb; border-radius: 10px;">
  <h2 style="color: #2563eb; border-bottom: 3px solid #2563eb; padding-bottom: 10px;">Mobile Plan Renewal Reminder</h2>

  <div style="background-color: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p style="font-size: 18px; color: #dc2626; font-weight: bold;">
      Your mobile plan renews in <strong>{{.DaysUntil}} {{.DayWord}}</strong>!
    </p>

    <div style="background-color: #f3f4f6; padding: 15px; border-radius: 6px; margin: 15px 0;">
      <h3 style="margin-top: 0; color: #1f2937;">Plan Details:</h3>
      <table style="width: 100%; border-collapse: collapse;">
        <tr><td style="padding: 8px 0; font-weight: bold; color: #4b5563;">Provider:</td><td style="padding: 8px 0; color: #1f2937;">{{.Provider}}</td></tr>
        <tr><td style="padding: 8px 0; font-weight: bold; color: #4b5563;">Phone Number:</td><td style="padding: 8px 0; color: #1f2937;">{{.PhoneNumber}}</td></tr>
        <tr><td style="padding: 8px 0; font-weight: bold; color: #4b5563;">Plan Name:</td><td style="padding: 8px 0; color: #1f2937;">{{.PlanName}}</td></tr>
        <tr><td style="padding: 8px 0; font-weight: bold; color: #4b5563;">Renewal Date:</td><td style="padding: 8px 0; color: #1f2937;">{{.RenewalDate}}</td></tr>
        <tr><td style="padding: 8px 0; font-weight: bold; color: #4b5563;">Monthly Cost:</td><td style="padding: 8px 0; color: #1f2937; font-size: 18px;">{{.Cost}}</td></tr>
      </table>
    </div>

    {{if .IsPromotion}}
    <div style="background-color: #fef3c7; border-left: 4px solid #f59e0b; padding: 15px; border-radius: 4px; margin: 15px 0;">
      <p style="margin: 0; color: #92400e;">
        <strong>Promotional Pricing:</strong><br>
        {{.PromotionDetails}}
        <br><br>
        <em>Remember to check if this rate continues or if pricing changes after renewal!</em>
      </p>
    </div>
    {{end}}

    <div style="background-color: #dbeafe; padding: 15px; border-radius: 6px; margin-top: 20px;">
      <h4 style="margin-top: 0; color: #1e40af;">Action Items:</h4>
      <ul style="color: #1e3a8a; margin: 10px 0; padding-left: 20px;">
        <li>Review your current usage and plan suitability</li>
        <li>Compare with competitor offers</li>
        <li>Check for any new promotions from {{.Provider}}</li>
        <li>Ensure payment method is up to date</li>
        {{if .IsPromotion}}<li><strong>Verify post-promotion pricing</strong></li>{{end}}
      </ul>
    </div>
  </div>

  <p style="color: #6b7280; font-size: 12px; text-align: center; margin-top: 20px;">
    This is an automated reminder from your Mobile Renewal Tracker.<br>
    To stop receiving these reminders, remove this plan from your tracker.
  </p>
</div>`

var reminderTemplate = template.Must(template.New("reminder").Parse(reminderEmailTemplate))

// ComposeReminder renders the reminder email for a plan. Pure: the same
// today/plan pair always yields the same subject and body.
func ComposeReminder(today time.Time, plan models.Plan) (subject, body string) {
	daysUntil := utils.DaysUntil(today, plan.RenewalDate)

	dayWord, subjectDayWord := "days", "Days"
	if daysUntil == 1 {
		dayWord, subjectDayWord = "day", "Day"
	}

	subject = fmt.Sprintf("Reminder: %s Mobile Plan Renews in %d %s",
		plan.Provider, daysUntil, subjectDayWord)

	data := reminderEmailData{
		Provider:         plan.Provider,
		PhoneNumber:      plan.PhoneNumber,
		PlanName:         plan.PlanName,
		RenewalDate:      plan.RenewalDate.Format("Monday, January 2, 2006"),
		Cost:             fmt.Sprintf("$%.2f", plan.Cost),
		DaysUntil:        daysUntil,
		DayWord:          dayWord,
		IsPromotion:      plan.IsPromotion,
		PromotionDetails: plan.PromotionDetails,
	}

	var buf bytes.Buffer
	// The template is parsed at init; execution over plain strings cannot fail.
	_ = reminderTemplate.Execute(&buf, data)
	return subject, buf.String()
}
