package model

import (
	"time"
)

// PromoCode is admin-managed display/accounting data; nothing redeems
// codes against subscriptions yet.
type PromoCode struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	Code           string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	DiscountAmount float64   `gorm:"type:decimal(10,2)" json:"discount_amount,omitempty"`
	BonusMonths    int       `gorm:"default:0" json:"bonus_months,omitempty"`
	MaxUses        int       `gorm:"default:0" json:"max_uses,omitempty"` // 0 = unlimited
	UsedCount      int       `gorm:"default:0" json:"used_count"`
	IsActive       bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func (PromoCode) TableName() string {
	return "promo_codes"
}

type PlanOffer struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Plan          string    `gorm:"size:20;not null" json:"plan"`
	Duration      string    `gorm:"size:20;not null" json:"duration"`
	OfferType     string    `gorm:"size:50;not null;default:discount" json:"offer_type"`
	OriginalPrice float64   `gorm:"type:decimal(10,2);not null" json:"original_price"`
	OfferPrice    float64   `gorm:"type:decimal(10,2)" json:"offer_price,omitempty"`
	BonusMonths   int       `gorm:"default:0" json:"bonus_months,omitempty"`
	IsActive      bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (PlanOffer) TableName() string {
	return "plan_offers"
}

type SiteSetting struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
