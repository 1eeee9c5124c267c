package model

import (
	"time"
)

const (
	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
	PaymentRejected  = "rejected"
)

// Payment records a manual top-up-code payment awaiting admin review.
// Codes holds the raw recharge codes as submitted, comma-joined.
type Payment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CompanyID int64     `gorm:"not null;index" json:"company_id"`
	Plan      string    `gorm:"size:20;not null" json:"plan"`
	Duration  string    `gorm:"size:20;not null" json:"duration"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Codes     string    `gorm:"type:text;not null" json:"codes"`
	Status    string    `gorm:"size:20;not null;default:pending;index" json:"status"` // pending, confirmed, rejected
	CreatedAt time.Time `json:"created_at"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
