package service

import (
	"time"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/repository"
)

type StatsService struct {
	statRepo    *repository.StatisticRepo
	companyRepo *repository.CompanyRepo
	subRepo     *repository.SubscriptionRepo
	paymentRepo *repository.PaymentRepo
	ticketRepo  *repository.TicketRepo
}

func NewStatsService(
	statRepo *repository.StatisticRepo,
	companyRepo *repository.CompanyRepo,
	subRepo *repository.SubscriptionRepo,
	paymentRepo *repository.PaymentRepo,
	ticketRepo *repository.TicketRepo,
) *StatsService {
	return &StatsService{
		statRepo:    statRepo,
		companyRepo: companyRepo,
		subRepo:     subRepo,
		paymentRepo: paymentRepo,
		ticketRepo:  ticketRepo,
	}
}

// Summary returns the last `days` daily rows plus totals for the
// tenant dashboard.
func (s *StatsService) Summary(companyID int64, days int) (*dto.StatisticsSummary, error) {
	if days <= 0 || days > 365 {
		days = 30
	}

	now := time.Now()
	from := now.AddDate(0, 0, -(days - 1)).Format("2006-01-02")
	to := now.Format("2006-01-02")

	rows, err := s.statRepo.Range(companyID, from, to)
	if err != nil {
		return nil, err
	}

	summary := &dto.StatisticsSummary{Days: rows}
	for _, row := range rows {
		summary.TotalVisits += row.Visits
		summary.TotalPhone += row.PhoneClicks
		summary.TotalWhatsapp += row.WhatsappClicks
		summary.TotalFacebook += row.FacebookClicks
	}

	return summary, nil
}

// AdminOverview aggregates platform-wide numbers for the admin
// dashboard.
func (s *StatsService) AdminOverview() (*dto.AdminOverview, error) {
	overview := &dto.AdminOverview{}
	var err error

	if overview.TotalCompanies, err = s.companyRepo.Count(); err != nil {
		return nil, err
	}
	if overview.VerifiedCompanies, err = s.companyRepo.CountWhere("verified = ?", true); err != nil {
		return nil, err
	}
	if overview.BannedCompanies, err = s.companyRepo.CountWhere("banned = ?", true); err != nil {
		return nil, err
	}
	if overview.ActiveSubscriptions, err = s.subRepo.CountByStatus(model.SubscriptionActive); err != nil {
		return nil, err
	}
	if overview.PendingPayments, err = s.paymentRepo.CountByStatus(model.PaymentPending); err != nil {
		return nil, err
	}
	if overview.ConfirmedRevenue, err = s.paymentRepo.ConfirmedRevenue(); err != nil {
		return nil, err
	}
	if overview.TotalVisits, err = s.statRepo.TotalVisits(); err != nil {
		return nil, err
	}
	if overview.OpenTickets, err = s.ticketRepo.CountOpen(); err != nil {
		return nil, err
	}

	return overview, nil
}
