package testutil

import (
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
)

var fixtureSeq int64

func nextSeq() int64 {
	fixtureSeq++
	return fixtureSeq
}

type UserOption func(*model.User)

func WithRole(role string) UserOption {
	return func(u *model.User) { u.Role = role }
}

func WithEmail(email string) UserOption {
	return func(u *model.User) { u.Email = email }
}

func WithPassword(password string) UserOption {
	return func(u *model.User) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		u.PasswordHash = string(hash)
	}
}

// CreateUser inserts a company-role user with a usable password
// ("password123" unless WithPassword overrides it).
func CreateUser(t *testing.T, db *gorm.DB, opts ...UserOption) *model.User {
	t.Helper()

	seq := nextSeq()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &model.User{
		Email:        fmt.Sprintf("user%d@example.com", seq),
		PasswordHash: string(hash),
		Name:         fmt.Sprintf("User %d", seq),
		Role:         model.RoleCompany,
	}
	for _, opt := range opts {
		opt(user)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

type CompanyOption func(*model.Company)

func WithBanned(banned bool) CompanyOption {
	return func(c *model.Company) { c.Banned = banned }
}

func WithVerified(verified bool) CompanyOption {
	return func(c *model.Company) { c.Verified = verified }
}

func WithCity(city string) CompanyOption {
	return func(c *model.Company) { c.City = city }
}

func WithCategory(category string) CompanyOption {
	return func(c *model.Company) { c.Category = category }
}

// CreateCompany inserts a company owned by user.
func CreateCompany(t *testing.T, db *gorm.DB, user *model.User, opts ...CompanyOption) *model.Company {
	t.Helper()

	seq := nextSeq()
	company := &model.Company{
		UserID:      user.ID,
		CompanyName: fmt.Sprintf("شركة الاختبار %d", seq),
		Slug:        fmt.Sprintf("test-company-%d", seq),
		City:        "طرابلس",
		Category:    "مقاولات عامة",
	}
	for _, opt := range opts {
		opt(company)
	}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}
	return company
}

type SubscriptionOption func(*model.Subscription)

func WithPlan(plan string) SubscriptionOption {
	return func(s *model.Subscription) { s.Plan = plan }
}

func WithStatus(status string) SubscriptionOption {
	return func(s *model.Subscription) { s.Status = status }
}

func WithEndsAt(endsAt time.Time) SubscriptionOption {
	return func(s *model.Subscription) { s.EndsAt = &endsAt }
}

// CreateActiveSubscription inserts an active subscription and points
// the company's current_subscription_id at it.
func CreateActiveSubscription(t *testing.T, db *gorm.DB, company *model.Company, opts ...SubscriptionOption) *model.Subscription {
	t.Helper()

	now := time.Now()
	ends := now.AddDate(0, 1, 0)
	sub := &model.Subscription{
		CompanyID: company.ID,
		Plan:      model.PlanBasic,
		Duration:  model.DurationMonthly,
		Price:     50,
		Status:    model.SubscriptionActive,
		StartedAt: &now,
		EndsAt:    &ends,
	}
	for _, opt := range opts {
		opt(sub)
	}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("failed to create test subscription: %v", err)
	}

	if sub.Status == model.SubscriptionActive {
		if err := db.Model(company).Update("current_subscription_id", sub.ID).Error; err != nil {
			t.Fatalf("failed to link current subscription: %v", err)
		}
		company.CurrentSubscriptionID = &sub.ID
	}
	return sub
}

// CreatePendingPayment inserts a pending payment for company.
func CreatePendingPayment(t *testing.T, db *gorm.DB, company *model.Company) *model.Payment {
	t.Helper()

	payment := &model.Payment{
		CompanyID: company.ID,
		Plan:      model.PlanBasic,
		Duration:  model.DurationMonthly,
		Amount:    50,
		Codes:     "1234567890123456",
		Status:    model.PaymentPending,
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}
