package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/config"
	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/email"
	"github.com/moqawil/moqawil_server/internal/repository"
	"github.com/moqawil/moqawil_server/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpireHours: 1,
		},
		Subscription: config.SubscriptionConfig{
			Plans: config.DefaultPlans(),
		},
		Upload: config.UploadConfig{
			MaxSize:          5 << 20,
			AllowedMIMETypes: []string{"image/jpeg", "image/png"},
		},
	}
}

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	cfg := testConfig()
	return NewAuthService(db, cfg,
		repository.NewUserRepo(db),
		repository.NewCompanyRepo(db),
		email.NewService(&cfg.Email))
}

func registerReq() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:       "owner@example.com",
		Password:    "password123",
		Name:        "صاحب الشركة",
		CompanyName: "شركة البناء الحديث",
		City:        "بنغازي",
		Category:    "مقاولات عامة",
		Phone:       "0911234567",
		Plan:        model.PlanBasic,
		Duration:    model.DurationMonthly,
		Codes:       []string{"1111222233334444"},
	}
}

func TestRegisterCreatesFullChain(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newAuthService(t, db)

	resp, err := svc.Register(registerReq())
	require.NoError(t, err)
	require.NotZero(t, resp.UserID)
	require.NotZero(t, resp.CompanyID)
	require.NotZero(t, resp.PaymentID)

	var user model.User
	require.NoError(t, db.First(&user, resp.UserID).Error)
	assert.Equal(t, model.RoleCompany, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)

	var company model.Company
	require.NoError(t, db.First(&company, resp.CompanyID).Error)
	assert.Equal(t, user.ID, company.UserID)
	assert.NotEmpty(t, company.Slug)
	assert.Nil(t, company.CurrentSubscriptionID)
	assert.False(t, company.Verified)

	var sub model.Subscription
	require.NoError(t, db.Where("company_id = ?", company.ID).First(&sub).Error)
	assert.Equal(t, model.SubscriptionPending, sub.Status)
	assert.Equal(t, model.PlanBasic, sub.Plan)
	assert.Nil(t, sub.StartedAt)

	var payment model.Payment
	require.NoError(t, db.First(&payment, resp.PaymentID).Error)
	assert.Equal(t, model.PaymentPending, payment.Status)
	assert.Equal(t, float64(50), payment.Amount)
	assert.Equal(t, "1111222233334444", payment.Codes)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Register(registerReq())
	require.NoError(t, err)

	_, err = svc.Register(registerReq())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterWrongCodeCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newAuthService(t, db)

	req := registerReq()
	req.Plan = model.PlanPro // needs 4 codes
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, ErrWrongCodeCount)
}

func TestRegisterUnknownPlan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newAuthService(t, db)

	req := registerReq()
	req.Plan = "enterprise"
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestRegisterYearlyPrice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newAuthService(t, db)

	req := registerReq()
	req.Plan = model.PlanPremium
	req.Duration = model.DurationYearly
	req.Codes = []string{"1", "2"}

	resp, err := svc.Register(req)
	require.NoError(t, err)

	var payment model.Payment
	require.NoError(t, db.First(&payment, resp.PaymentID).Error)
	assert.Equal(t, float64(1000), payment.Amount)
}

func TestRegisterSlugCollision(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newAuthService(t, db)

	first := registerReq()
	first.CompanyName = "Alpha Construction"
	resp1, err := svc.Register(first)
	require.NoError(t, err)

	second := registerReq()
	second.Email = "other@example.com"
	second.CompanyName = "Alpha Construction"
	resp2, err := svc.Register(second)
	require.NoError(t, err)

	var c1, c2 model.Company
	require.NoError(t, db.First(&c1, resp1.CompanyID).Error)
	require.NoError(t, db.First(&c2, resp2.CompanyID).Error)
	assert.NotEqual(t, c1.Slug, c2.Slug)
}

func TestLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newAuthService(t, db)

	user := testutil.CreateUser(t, db, testutil.WithEmail("login@example.com"), testutil.WithPassword("s3cret-pass"))
	testutil.CreateCompany(t, db, user)

	resp, err := svc.Login(&dto.LoginRequest{Email: "login@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotZero(t, resp.User.CompanyID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newAuthService(t, db)

	testutil.CreateUser(t, db, testutil.WithEmail("login@example.com"))

	_, err := svc.Login(&dto.LoginRequest{Email: "login@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newAuthService(t, db)

	user := testutil.CreateUser(t, db, testutil.WithEmail("pw@example.com"))

	err := svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword456",
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "pw@example.com", Password: "newpassword456"})
	assert.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "pw@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newAuthService(t, db)

	user := testutil.CreateUser(t, db)

	err := svc.ChangePassword(user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "newpassword456",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}
