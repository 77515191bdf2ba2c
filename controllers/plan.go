package controllers

import (
	"errors"
	"net/http"
	"time"

	"renewal-tracker-backend/models"
	"renewal-tracker-backend/repositories"
	"renewal-tracker-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlanController handles the plan CRUD endpoints.
type PlanController struct {
	Repo repositories.PlanRepository
}

// PlanInput defines the expected JSON structure for creating or
// updating a plan. Cost is a pointer so a zero cost still passes the
// required check.
type PlanInput struct {
	UserEmail        string   `json:"userEmail" binding:"required,email"`
	Provider         string   `json:"provider" binding:"required"`
	PhoneNumber      string   `json:"phoneNumber" binding:"required"`
	PlanName         string   `json:"planName" binding:"required"`
	RenewalDate      string   `json:"renewalDate" binding:"required"`
	Cost             *float64 `json:"cost" binding:"required"`
	ReminderDays     *int     `json:"reminderDays"`
	IsPromotion      bool     `json:"isPromotion"`
	PromotionDetails string   `json:"promotionDetails"`
}

// parseRenewalDate accepts a plain calendar date, with RFC3339 as a
// fallback for clients that send full timestamps. The result is always
// midnight in the host's local zone so it shares a calendar with the
// dispatcher's "today".
func parseRenewalDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return utils.DayIn(t, time.Local), nil
}

// validate applies the checks binding tags cannot express and returns
// the parsed renewal date.
func (input *PlanInput) validate() (time.Time, string) {
	if !utils.ValidatePhone(input.PhoneNumber) {
		return time.Time{}, "Invalid phone number format"
	}
	renewalDate, err := parseRenewalDate(input.RenewalDate)
	if err != nil {
		return time.Time{}, "Invalid renewal date, expected YYYY-MM-DD"
	}
	if *input.Cost < 0 {
		return time.Time{}, "Cost must not be negative"
	}
	if input.ReminderDays != nil && *input.ReminderDays < 0 {
		return time.Time{}, "Reminder days must not be negative"
	}
	return renewalDate, ""
}

func (input *PlanInput) toPlan(renewalDate time.Time) models.Plan {
	reminderDays := 7
	if input.ReminderDays != nil {
		reminderDays = *input.ReminderDays
	}

	return models.Plan{
		UserEmail:        input.UserEmail,
		Provider:         input.Provider,
		PhoneNumber:      input.PhoneNumber,
		PlanName:         input.PlanName,
		RenewalDate:      renewalDate,
		Cost:             *input.Cost,
		ReminderDays:     reminderDays,
		IsPromotion:      input.IsPromotion,
		PromotionDetails: input.PromotionDetails,
	}
}

// CreatePlan adds a new plan for a user
func (pc *PlanController) CreatePlan(c *gin.Context) {
	var input PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: "+err.Error())
		return
	}

	renewalDate, msg := input.validate()
	if msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	plan := input.toPlan(renewalDate)
	if err := pc.Repo.Insert(&plan); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlans retrieves all plans for a user, soonest renewal first
func (pc *PlanController) GetPlans(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Email is required")
		return
	}

	plans, err := pc.Repo.ListByUser(email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// UpdatePlan replaces all mutable fields of an existing plan
func (pc *PlanController) UpdatePlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	var input PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields: "+err.Error())
		return
	}

	renewalDate, msg := input.validate()
	if msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	plan, err := pc.Repo.Update(planID, input.toPlan(renewalDate))
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update plan")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan hard deletes a plan
func (pc *PlanController) DeletePlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	if err := pc.Repo.Delete(planID); err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete plan")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}
