package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan is a tracked mobile service plan with its renewal reminder policy.
type Plan struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	UserEmail   string    `gorm:"not null;index" json:"userEmail"`
	Provider    string    `gorm:"not null" json:"provider"`
	PhoneNumber string    `gorm:"not null" json:"phoneNumber"`
	PlanName    string    `gorm:"not null" json:"planName"`
	RenewalDate time.Time `gorm:"type:date;not null" json:"renewalDate"`
	Cost        float64   `gorm:"type:decimal(10,2);not null" json:"cost"`

	ReminderDays     int    `gorm:"default:7" json:"reminderDays"`
	IsPromotion      bool   `gorm:"default:false" json:"isPromotion"`
	PromotionDetails string `gorm:"type:text" json:"promotionDetails"`

	// Nil until the first reminder goes out; date-only semantics.
	LastReminderSent *time.Time `gorm:"type:date" json:"lastReminderSent"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *Plan) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
