package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/repository"
	"github.com/moqawil/moqawil_server/internal/testutil"
)

// OSS client is nil: these tests never touch upload paths.
func newCompanyService(db *gorm.DB) *CompanyService {
	return NewCompanyService(db, testConfig(),
		repository.NewCompanyRepo(db),
		repository.NewContentRepo(db),
		repository.NewSubscriptionRepo(db),
		repository.NewStatisticRepo(db),
		repository.NewNotificationRepo(db),
		repository.NewTicketRepo(db),
		nil)
}

func TestPublicProfileCountsVisit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCompanyService(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)
	require.NoError(t, db.Create(&model.Project{
		CompanyID:   company.ID,
		Title:       "مشروع",
		ProjectType: model.ProjectTypeResidential,
	}).Error)

	profile, err := svc.PublicProfile(company.Slug)
	require.NoError(t, err)
	assert.Equal(t, company.ID, profile.Company.ID)
	assert.Len(t, profile.Projects, 1)

	_, err = svc.PublicProfile(company.Slug)
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	var stat model.Statistic
	require.NoError(t, db.Where("company_id = ? AND date = ?", company.ID, today).First(&stat).Error)
	assert.Equal(t, 2, stat.Visits)
}

func TestPublicProfileBannedHidden(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCompanyService(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user, testutil.WithBanned(true))

	_, err := svc.PublicProfile(company.Slug)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestTrackClick(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCompanyService(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)

	require.NoError(t, svc.TrackClick(company.Slug, "phone"))
	require.NoError(t, svc.TrackClick(company.Slug, "phone"))
	require.NoError(t, svc.TrackClick(company.Slug, "whatsapp"))

	assert.ErrorIs(t, svc.TrackClick(company.Slug, "telegram"), ErrUnknownClick)

	today := time.Now().Format("2006-01-02")
	var stat model.Statistic
	require.NoError(t, db.Where("company_id = ? AND date = ?", company.ID, today).First(&stat).Error)
	assert.Equal(t, 2, stat.PhoneClicks)
	assert.Equal(t, 1, stat.WhatsappClicks)
	assert.Equal(t, 0, stat.Visits)
}

func TestListPublicExcludesBanned(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCompanyService(db)

	u1 := testutil.CreateUser(t, db)
	testutil.CreateCompany(t, db, u1)
	u2 := testutil.CreateUser(t, db)
	banned := testutil.CreateCompany(t, db, u2, testutil.WithBanned(true))

	companies, total, err := svc.ListPublic("", "", "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	for _, c := range companies {
		assert.NotEqual(t, banned.ID, c.ID)
	}
}

func TestListPublicFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCompanyService(db)

	u1 := testutil.CreateUser(t, db)
	testutil.CreateCompany(t, db, u1, testutil.WithCity("مصراتة"), testutil.WithCategory("مقاولات عامة"))
	u2 := testutil.CreateUser(t, db)
	testutil.CreateCompany(t, db, u2, testutil.WithCity("طرابلس"), testutil.WithCategory("تشطيبات"))

	_, total, err := svc.ListPublic("مصراتة", "", "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = svc.ListPublic("", "تشطيبات", "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestModerate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCompanyService(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)

	verified := true
	updated, err := svc.Moderate(company.ID, &dto.ModerationRequest{Verified: &verified})
	require.NoError(t, err)
	assert.True(t, updated.Verified)
	assert.False(t, updated.Banned)

	banned := true
	updated, err = svc.Moderate(company.ID, &dto.ModerationRequest{Banned: &banned})
	require.NoError(t, err)
	assert.True(t, updated.Banned)
	// Verified flag untouched by a partial update.
	assert.True(t, updated.Verified)
}

func TestDeleteCascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCompanyService(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)
	testutil.CreateActiveSubscription(t, db, company)
	testutil.CreatePendingPayment(t, db, company)
	require.NoError(t, db.Create(&model.Project{CompanyID: company.ID, Title: "م", ProjectType: model.ProjectTypeResidential}).Error)
	require.NoError(t, db.Create(&model.SupportTicket{CompanyID: company.ID, Message: "مساعدة", Status: model.TicketNew}).Error)
	require.NoError(t, db.Create(&model.Notification{CompanyID: &company.ID, SenderType: model.SenderAdmin, Title: "ت", Body: "ب"}).Error)

	require.NoError(t, svc.Delete(company.ID))

	for _, m := range []interface{}{
		&model.Company{}, &model.User{}, &model.Subscription{}, &model.Payment{},
		&model.Project{}, &model.SupportTicket{},
	} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestDeleteUnknownCompany(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCompanyService(db)

	assert.ErrorIs(t, svc.Delete(12345), ErrCompanyNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCompanyService(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)

	updated, err := svc.UpdateProfile(company.ID, &dto.UpdateProfileRequest{
		CompanyName: "الشركة المتحدة للمقاولات",
		City:        "سبها",
		Category:    "بنية تحتية",
		Description: "خبرة ٢٠ سنة",
		Phone1:      "0921112222",
		Whatsapp:    "218921112222",
	})
	require.NoError(t, err)
	assert.Equal(t, "الشركة المتحدة للمقاولات", updated.CompanyName)
	assert.Equal(t, "سبها", updated.City)
	// Slug does not change on rename, public links stay stable.
	assert.Equal(t, company.Slug, updated.Slug)
}
