package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"renewal-tracker-backend/models"
	"renewal-tracker-backend/repositories"
	"renewal-tracker-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryPlanRepo is an in-memory PlanRepository for dispatcher tests.
type memoryPlanRepo struct {
	plans   map[uuid.UUID]*models.Plan
	listErr error
}

func newMemoryPlanRepo() *memoryPlanRepo {
	return &memoryPlanRepo{plans: make(map[uuid.UUID]*models.Plan)}
}

func (r *memoryPlanRepo) Insert(plan *models.Plan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	plan.CreatedAt = time.Now()
	r.plans[plan.ID] = plan
	return nil
}

func (r *memoryPlanRepo) Update(id uuid.UUID, fields models.Plan) (*models.Plan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, repositories.ErrPlanNotFound
	}
	fields.ID = plan.ID
	fields.CreatedAt = plan.CreatedAt
	fields.LastReminderSent = plan.LastReminderSent
	*plan = fields
	return plan, nil
}

func (r *memoryPlanRepo) Delete(id uuid.UUID) error {
	if _, ok := r.plans[id]; !ok {
		return repositories.ErrPlanNotFound
	}
	delete(r.plans, id)
	return nil
}

func (r *memoryPlanRepo) ListByUser(email string) ([]models.Plan, error) {
	var out []models.Plan
	for _, plan := range r.plans {
		if plan.UserEmail == email {
			out = append(out, *plan)
		}
	}
	return out, nil
}

func (r *memoryPlanRepo) ListCandidates(today time.Time) ([]models.Plan, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.Plan
	for _, plan := range r.plans {
		if plan.LastReminderSent == nil || plan.LastReminderSent.Before(utils.BeginningOfDay(today)) {
			out = append(out, *plan)
		}
	}
	return out, nil
}

func (r *memoryPlanRepo) MarkSent(id uuid.UUID, day time.Time) error {
	plan, ok := r.plans[id]
	if !ok {
		return repositories.ErrPlanNotFound
	}
	sent := utils.BeginningOfDay(day)
	plan.LastReminderSent = &sent
	return nil
}

// recordingMailer captures sends and can fail selected recipients.
type recordingMailer struct {
	sent    []string
	failFor map[string]bool
}

func (m *recordingMailer) Send(to, subject, htmlBody string) error {
	if m.failFor[to] {
		return fmt.Errorf("failed to send email: connection refused")
	}
	m.sent = append(m.sent, to)
	return nil
}

func addPlan(t *testing.T, repo *memoryPlanRepo, email string, daysUntil, reminderDays int) *models.Plan {
	t.Helper()
	plan := &models.Plan{
		UserEmail:    email,
		Provider:     "Telia",
		PhoneNumber:  "+46701234567",
		PlanName:     "Mobil 20GB",
		RenewalDate:  time.Now().AddDate(0, 0, daysUntil),
		Cost:         25,
		ReminderDays: reminderDays,
	}
	require.NoError(t, repo.Insert(plan))
	return plan
}

func TestRunOnce_SendsAndMarks(t *testing.T) {
	repo := newMemoryPlanRepo()
	mailer := &recordingMailer{}
	svc := NewReminderService(repo, mailer)
	today := time.Now()

	plan := addPlan(t, repo, "a@example.com", 7, 7)

	sent, err := svc.RunOnce(today)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"a@example.com"}, mailer.sent)

	require.NotNil(t, repo.plans[plan.ID].LastReminderSent)
	assert.Equal(t, utils.BeginningOfDay(today), *repo.plans[plan.ID].LastReminderSent)
}

func TestRunOnce_NoDuplicateSameDay(t *testing.T) {
	repo := newMemoryPlanRepo()
	mailer := &recordingMailer{}
	svc := NewReminderService(repo, mailer)
	today := time.Now()

	addPlan(t, repo, "a@example.com", 3, 7)

	sent, err := svc.RunOnce(today)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = svc.RunOnce(today)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Len(t, mailer.sent, 1)
}

func TestRunOnce_SkipsPlansOutsideWindow(t *testing.T) {
	repo := newMemoryPlanRepo()
	mailer := &recordingMailer{}
	svc := NewReminderService(repo, mailer)

	addPlan(t, repo, "far@example.com", 30, 7)
	addPlan(t, repo, "past@example.com", -1, 7)

	sent, err := svc.RunOnce(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Empty(t, mailer.sent)
}

func TestRunOnce_DeliveryFailureIsIsolated(t *testing.T) {
	repo := newMemoryPlanRepo()
	mailer := &recordingMailer{failFor: map[string]bool{"broken@example.com": true}}
	svc := NewReminderService(repo, mailer)
	today := time.Now()

	ok1 := addPlan(t, repo, "first@example.com", 2, 7)
	bad := addPlan(t, repo, "broken@example.com", 2, 7)
	ok2 := addPlan(t, repo, "second@example.com", 2, 7)

	sent, err := svc.RunOnce(today)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	assert.NotNil(t, repo.plans[ok1.ID].LastReminderSent)
	assert.NotNil(t, repo.plans[ok2.ID].LastReminderSent)
	assert.Nil(t, repo.plans[bad.ID].LastReminderSent, "failed delivery must stay eligible")
}

func TestRunOnce_ListFailureIsFatal(t *testing.T) {
	repo := newMemoryPlanRepo()
	repo.listErr = errors.New("connection reset")
	mailer := &recordingMailer{}
	svc := NewReminderService(repo, mailer)

	sent, err := svc.RunOnce(time.Now())
	require.Error(t, err)
	assert.ErrorContains(t, err, "listing candidate plans")
	assert.Equal(t, 0, sent)
	assert.Empty(t, mailer.sent)
}
