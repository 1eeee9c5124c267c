package model

import (
	"time"
)

const (
	SenderSupport      = "support"
	SenderAdmin        = "admin"
	SenderSubscription = "subscription"
)

// Notification with a nil CompanyID is a broadcast visible to every
// company.
type Notification struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	CompanyID  *int64    `gorm:"index" json:"company_id,omitempty"`
	SenderType string    `gorm:"size:20;not null" json:"sender_type"` // support, admin, subscription
	Title      string    `gorm:"size:255;not null" json:"title"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

func ValidSenderType(t string) bool {
	switch t {
	case SenderSupport, SenderAdmin, SenderSubscription:
		return true
	}
	return false
}
