package dto

import (
	"github.com/moqawil/moqawil_server/internal/model"
)

// SubscribeRequest covers upgrade and renewal: a plan, a duration and
// the top-up codes paying for it.
type SubscribeRequest struct {
	Plan     string   `json:"plan" binding:"required"`
	Duration string   `json:"duration"`
	Codes    []string `json:"codes" binding:"required,min=1"`
}

// ResubmitCodesRequest creates a fresh pending payment after a
// rejection, without touching the pending subscription row.
type ResubmitCodesRequest struct {
	Codes []string `json:"codes" binding:"required,min=1"`
}

type SubscriptionView struct {
	Current *model.Subscription  `json:"current,omitempty"`
	History []model.Subscription `json:"history"`
	Limits  *PlanLimits          `json:"limits"`
}

type PlanLimits struct {
	Plan     string `json:"plan"`
	Projects int    `json:"projects"`
	Services int    `json:"services"`
	Team     int    `json:"team"`
	Works    int    `json:"works"`
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required"` // active, pending, expired, cancelled
}

// PlanCatalogItem is what the landing page renders: base pricing plus
// any active offer.
type PlanCatalogItem struct {
	Plan          string           `json:"plan"`
	MonthlyPrice  float64          `json:"monthly_price"`
	YearlyPrice   float64          `json:"yearly_price"`
	CodesRequired int              `json:"codes_required"`
	Limits        PlanLimits       `json:"limits"`
	Offer         *model.PlanOffer `json:"offer,omitempty"`
}
