package dto

import (
	"github.com/moqawil/moqawil_server/internal/model"
)

type StatisticsSummary struct {
	Days          []model.Statistic `json:"days"`
	TotalVisits   int               `json:"total_visits"`
	TotalPhone    int               `json:"total_phone_clicks"`
	TotalWhatsapp int               `json:"total_whatsapp_clicks"`
	TotalFacebook int               `json:"total_facebook_clicks"`
}

// AdminOverview feeds the admin statistics dashboard.
type AdminOverview struct {
	TotalCompanies      int64   `json:"total_companies"`
	VerifiedCompanies   int64   `json:"verified_companies"`
	BannedCompanies     int64   `json:"banned_companies"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
	PendingPayments     int64   `json:"pending_payments"`
	ConfirmedRevenue    float64 `json:"confirmed_revenue"`
	TotalVisits         int64   `json:"total_visits"`
	OpenTickets         int64   `json:"open_tickets"`
}
