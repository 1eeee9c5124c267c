package model

import (
	"time"
)

const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
	PlanPro     = "pro"

	DurationMonthly = "monthly"
	DurationYearly  = "yearly"

	SubscriptionPending   = "pending"
	SubscriptionActive    = "active"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"
)

// Subscription rows are never deleted; every upgrade or renewal request
// appends a new pending row. Company.CurrentSubscriptionID marks the one
// that counts.
type Subscription struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	CompanyID int64      `gorm:"not null;index" json:"company_id"`
	Plan      string     `gorm:"size:20;not null;default:basic" json:"plan"`        // basic, premium, pro
	Duration  string     `gorm:"size:20;not null;default:monthly" json:"duration"`  // monthly, yearly
	Price     float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Status    string     `gorm:"size:20;not null;default:pending;index" json:"status"` // pending, active, expired, cancelled
	StartedAt *time.Time `json:"started_at,omitempty"`
	EndsAt    *time.Time `gorm:"index" json:"ends_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func ValidPlan(plan string) bool {
	switch plan {
	case PlanBasic, PlanPremium, PlanPro:
		return true
	}
	return false
}

func ValidDuration(duration string) bool {
	return duration == DurationMonthly || duration == DurationYearly
}

func ValidSubscriptionStatus(status string) bool {
	switch status {
	case SubscriptionPending, SubscriptionActive, SubscriptionExpired, SubscriptionCancelled:
		return true
	}
	return false
}
