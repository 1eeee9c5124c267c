package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/repository"
	"github.com/moqawil/moqawil_server/internal/testutil"
)

func newStatsService(db *gorm.DB) *StatsService {
	return NewStatsService(
		repository.NewStatisticRepo(db),
		repository.NewCompanyRepo(db),
		repository.NewSubscriptionRepo(db),
		repository.NewPaymentRepo(db),
		repository.NewTicketRepo(db))
}

func TestSummaryTotals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newStatsService(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	require.NoError(t, db.Create(&model.Statistic{CompanyID: company.ID, Date: yesterday, Visits: 5, PhoneClicks: 2}).Error)
	require.NoError(t, db.Create(&model.Statistic{CompanyID: company.ID, Date: today, Visits: 3, WhatsappClicks: 1}).Error)

	// Old rows outside the window stay out.
	old := time.Now().AddDate(0, 0, -60).Format("2006-01-02")
	require.NoError(t, db.Create(&model.Statistic{CompanyID: company.ID, Date: old, Visits: 100}).Error)

	summary, err := svc.Summary(company.ID, 30)
	require.NoError(t, err)
	assert.Len(t, summary.Days, 2)
	assert.Equal(t, 8, summary.TotalVisits)
	assert.Equal(t, 2, summary.TotalPhone)
	assert.Equal(t, 1, summary.TotalWhatsapp)
}

func TestSummaryClampsDays(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newStatsService(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)

	_, err := svc.Summary(company.ID, -5)
	assert.NoError(t, err)
	_, err = svc.Summary(company.ID, 10000)
	assert.NoError(t, err)
}

func TestAdminOverview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newStatsService(db)

	u1 := testutil.CreateUser(t, db)
	c1 := testutil.CreateCompany(t, db, u1, testutil.WithVerified(true))
	testutil.CreateActiveSubscription(t, db, c1)

	u2 := testutil.CreateUser(t, db)
	c2 := testutil.CreateCompany(t, db, u2, testutil.WithBanned(true))
	testutil.CreatePendingPayment(t, db, c2)

	require.NoError(t, db.Create(&model.Payment{
		CompanyID: c1.ID, Plan: model.PlanBasic, Duration: model.DurationMonthly,
		Amount: 50, Codes: "x", Status: model.PaymentConfirmed,
	}).Error)
	require.NoError(t, db.Create(&model.Statistic{CompanyID: c1.ID, Date: "2026-08-01", Visits: 7}).Error)
	require.NoError(t, db.Create(&model.SupportTicket{CompanyID: c1.ID, Message: "م", Status: model.TicketNew}).Error)

	overview, err := svc.AdminOverview()
	require.NoError(t, err)
	assert.Equal(t, int64(2), overview.TotalCompanies)
	assert.Equal(t, int64(1), overview.VerifiedCompanies)
	assert.Equal(t, int64(1), overview.BannedCompanies)
	assert.Equal(t, int64(1), overview.ActiveSubscriptions)
	assert.Equal(t, int64(1), overview.PendingPayments)
	assert.Equal(t, float64(50), overview.ConfirmedRevenue)
	assert.Equal(t, int64(7), overview.TotalVisits)
	assert.Equal(t, int64(1), overview.OpenTickets)
}
