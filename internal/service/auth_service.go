package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/config"
	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/email"
	"github.com/moqawil/moqawil_server/internal/pkg/jwt"
	"github.com/moqawil/moqawil_server/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is wrong")
	ErrInvalidPlan        = errors.New("unknown plan or duration")
	ErrWrongCodeCount     = errors.New("wrong number of top-up codes for plan")
)

type AuthService struct {
	db          *gorm.DB
	cfg         *config.Config
	userRepo    *repository.UserRepo
	companyRepo *repository.CompanyRepo
	emailSvc    *email.Service
}

func NewAuthService(db *gorm.DB, cfg *config.Config, userRepo *repository.UserRepo, companyRepo *repository.CompanyRepo, emailSvc *email.Service) *AuthService {
	return &AuthService{
		db:          db,
		cfg:         cfg,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		emailSvc:    emailSvc,
	}
}

// Register creates the user, its company, the first pending
// subscription and the pending payment in one transaction. The account
// exists immediately but stays unusable until an admin confirms the
// payment.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	taken, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	plan, ok := s.cfg.Subscription.Plans[req.Plan]
	if !ok {
		return nil, ErrInvalidPlan
	}
	duration := req.Duration
	if duration == "" {
		duration = model.DurationMonthly
	}
	if !model.ValidDuration(duration) {
		return nil, ErrInvalidPlan
	}
	if len(req.Codes) != plan.CodesRequired {
		return nil, ErrWrongCodeCount
	}

	price := plan.MonthlyPrice
	if duration == model.DurationYearly {
		price = plan.YearlyPrice
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	companySlug, err := s.uniqueSlug(req.CompanyName)
	if err != nil {
		return nil, err
	}

	var resp dto.RegisterResponse
	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := &model.User{
			Email:        req.Email,
			PasswordHash: string(hash),
			Name:         req.Name,
			Role:         model.RoleCompany,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		company := &model.Company{
			UserID:      user.ID,
			CompanyName: req.CompanyName,
			Slug:        companySlug,
			City:        req.City,
			Category:    req.Category,
			Phone1:      req.Phone,
		}
		if err := tx.Create(company).Error; err != nil {
			return err
		}

		sub := &model.Subscription{
			CompanyID: company.ID,
			Plan:      req.Plan,
			Duration:  duration,
			Price:     price,
			Status:    model.SubscriptionPending,
		}
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		payment := &model.Payment{
			CompanyID: company.ID,
			Plan:      req.Plan,
			Duration:  duration,
			Amount:    price,
			Codes:     strings.Join(req.Codes, ","),
			Status:    model.PaymentPending,
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		resp = dto.RegisterResponse{
			UserID:    user.ID,
			CompanyID: company.ID,
			PaymentID: payment.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Welcome mail is best effort, a mail outage must not fail signup.
	go func() {
		if err := s.emailSvc.SendWelcome(req.Email, req.CompanyName); err != nil {
			log.Warn().Err(err).Str("email", req.Email).Msg("failed to send welcome email")
		}
	}()

	return &resp, nil
}

// Login verifies credentials and issues a JWT. Banned companies can
// still log in, the guard middleware walls off everything but support.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Role, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	info := &dto.UserInfo{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
	if user.Role == model.RoleCompany {
		if company, err := s.companyRepo.GetByUserID(user.ID); err == nil {
			info.CompanyID = company.ID
		}
	}

	return &dto.LoginResponse{Token: token, User: info}, nil
}

// ChangePassword verifies the current password before storing a new
// hash.
func (s *AuthService) ChangePassword(userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(userID, string(hash))
}

// uniqueSlug builds a URL slug from the company name, appending a
// numeric suffix on collision. Arabic names that slugify to nothing
// get a generated fallback.
func (s *AuthService) uniqueSlug(companyName string) (string, error) {
	base := slug.Make(companyName)
	if base == "" {
		base = "company"
	}

	candidate := base
	for i := 2; ; i++ {
		taken, err := s.companyRepo.ExistsBySlug(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
