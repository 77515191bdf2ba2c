package repositories

import (
	"errors"
	"time"

	"renewal-tracker-backend/models"
	"renewal-tracker-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrPlanNotFound is returned when an operation references a plan id
// that does not exist.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRepository is the persistence boundary for plans. The dispatcher
// and the controllers only ever see this interface.
type PlanRepository interface {
	Insert(plan *models.Plan) error
	Update(id uuid.UUID, fields models.Plan) (*models.Plan, error)
	Delete(id uuid.UUID) error
	ListByUser(email string) ([]models.Plan, error)
	ListCandidates(today time.Time) ([]models.Plan, error)
	MarkSent(id uuid.UUID, day time.Time) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Insert(plan *models.Plan) error {
	return r.db.Create(plan).Error
}

// Update replaces every mutable field of the plan. ID, CreatedAt and
// LastReminderSent are left untouched.
func (r *planRepository) Update(id uuid.UUID, fields models.Plan) (*models.Plan, error) {
	var plan models.Plan
	if err := r.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	plan.UserEmail = fields.UserEmail
	plan.Provider = fields.Provider
	plan.PhoneNumber = fields.PhoneNumber
	plan.PlanName = fields.PlanName
	plan.RenewalDate = fields.RenewalDate
	plan.Cost = fields.Cost
	plan.ReminderDays = fields.ReminderDays
	plan.IsPromotion = fields.IsPromotion
	plan.PromotionDetails = fields.PromotionDetails

	if err := r.db.Save(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Plan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *planRepository) ListByUser(email string) ([]models.Plan, error) {
	// Non-nil so an empty result serializes as [] rather than null.
	plans := []models.Plan{}
	err := r.db.Where("user_email = ?", email).
		Order("renewal_date ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// ListCandidates returns plans not yet reminded today. This is a coarse
// pre-filter; the evaluator re-applies the same-day gate in memory.
func (r *planRepository) ListCandidates(today time.Time) ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Where("last_reminder_sent IS NULL OR last_reminder_sent < ?", utils.BeginningOfDay(today)).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) MarkSent(id uuid.UUID, day time.Time) error {
	return r.db.Model(&models.Plan{}).
		Where("id = ?", id).
		Update("last_reminder_sent", utils.BeginningOfDay(day)).Error
}
