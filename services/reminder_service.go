// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"renewal-tracker-backend/repositories"
	"renewal-tracker-backend/utils"

	"github.com/robfig/cron/v3"
)

// ReminderService runs the reminder pass: fetch candidates, evaluate
// each plan, deliver, and record the send.
type ReminderService struct {
	repo   repositories.PlanRepository
	mailer Mailer
}

func NewReminderService(repo repositories.PlanRepository, mailer Mailer) *ReminderService {
	return &ReminderService{
		repo:   repo,
		mailer: mailer,
	}
}

// RunOnce evaluates every candidate plan against today and returns the
// number of reminders delivered. A failure while listing candidates
// aborts the run; a failure delivering to one plan leaves that plan's
// marker alone and the rest of the batch still goes out.
func (s *ReminderService) RunOnce(today time.Time) (int, error) {
	plans, err := s.repo.ListCandidates(today)
	if err != nil {
		return 0, fmt.Errorf("listing candidate plans: %w", err)
	}

	sent := 0
	for _, plan := range plans {
		// The SQL pre-filter already excluded plans reminded today, but
		// the evaluator re-checks so both gates must agree.
		if !ShouldSendReminder(today, plan) {
			continue
		}

		subject, body := ComposeReminder(today, plan)
		if err := s.mailer.Send(plan.UserEmail, subject, body); err != nil {
			log.Printf("Failed to send reminder to %s for %s plan: %v", plan.UserEmail, plan.Provider, err)
			continue
		}
		sent++

		if err := s.repo.MarkSent(plan.ID, utils.BeginningOfDay(today)); err != nil {
			log.Printf("Failed to record reminder for plan %s: %v", plan.ID, err)
		}
	}

	log.Printf("Sent %d reminder email(s)", sent)
	return sent, nil
}

// StartScheduler kicks off the daily 9 AM reminder pass.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		log.Println("Running scheduled reminder check...")
		if _, err := s.RunOnce(time.Now()); err != nil {
			log.Printf("Scheduled reminder check failed: %v", err)
		}
	})

	c.Start()
	log.Println("Reminder scheduler started")
}
