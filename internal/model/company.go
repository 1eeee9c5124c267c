package model

import (
	"time"
)

type Company struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	UserID      int64  `gorm:"not null;uniqueIndex" json:"user_id"`
	CompanyName string `gorm:"size:255;not null" json:"company_name"`
	Slug        string `gorm:"size:255;uniqueIndex" json:"slug"`
	Logo        string `gorm:"size:500" json:"logo,omitempty"`
	City        string `gorm:"size:100" json:"city,omitempty"`
	Category    string `gorm:"size:100" json:"category,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Address     string `gorm:"size:255" json:"address,omitempty"`
	Phone1      string `gorm:"size:30" json:"phone_1,omitempty"`
	Phone2      string `gorm:"size:30" json:"phone_2,omitempty"`
	Email       string `gorm:"size:255" json:"email,omitempty"`
	FacebookURL string `gorm:"size:500" json:"facebook_url,omitempty"`
	Whatsapp    string `gorm:"size:30" json:"whatsapp_number,omitempty"`
	FoundedAt   string `gorm:"size:10" json:"founded_at,omitempty"`

	Verified   bool `gorm:"default:false" json:"verified"`
	Restricted bool `gorm:"default:false" json:"restricted"`
	Banned     bool `gorm:"default:false;index" json:"banned"`

	// CurrentSubscriptionID points at the authoritative subscription row.
	// The subscriptions table is append-only history; this pointer moves
	// only on activation or admin override.
	CurrentSubscriptionID *int64 `gorm:"index" json:"current_subscription_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Company) TableName() string {
	return "companies"
}
