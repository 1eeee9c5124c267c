package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/config"
	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/email"
	"github.com/moqawil/moqawil_server/internal/pkg/pubsub"
	"github.com/moqawil/moqawil_server/internal/repository"
)

var (
	ErrPaymentNotPending  = errors.New("payment is not pending")
	ErrNoPendingSub       = errors.New("no pending subscription for company")
	ErrNoRejectedPayment  = errors.New("no rejected payment to resubmit")
	ErrInvalidStatus      = errors.New("invalid subscription status")
	ErrSubscriptionExists = errors.New("a pending subscription request already exists")
)

// SubscriptionService owns the payment review workflow and the
// subscription lifecycle around it.
type SubscriptionService struct {
	db          *gorm.DB
	cfg         *config.Config
	subRepo     *repository.SubscriptionRepo
	paymentRepo *repository.PaymentRepo
	companyRepo *repository.CompanyRepo
	userRepo    *repository.UserRepo
	pricingRepo *repository.PricingRepo
	quotaSvc    *QuotaService
	emailSvc    *email.Service
	publisher   *pubsub.Publisher
}

func NewSubscriptionService(
	db *gorm.DB,
	cfg *config.Config,
	subRepo *repository.SubscriptionRepo,
	paymentRepo *repository.PaymentRepo,
	companyRepo *repository.CompanyRepo,
	userRepo *repository.UserRepo,
	pricingRepo *repository.PricingRepo,
	quotaSvc *QuotaService,
	emailSvc *email.Service,
	publisher *pubsub.Publisher,
) *SubscriptionService {
	return &SubscriptionService{
		db:          db,
		cfg:         cfg,
		subRepo:     subRepo,
		paymentRepo: paymentRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		pricingRepo: pricingRepo,
		quotaSvc:    quotaSvc,
		emailSvc:    emailSvc,
		publisher:   publisher,
	}
}

// View assembles the tenant subscription page: the authoritative
// current row, full history and the effective plan ceilings.
func (s *SubscriptionService) View(company *model.Company) (*dto.SubscriptionView, error) {
	history, err := s.subRepo.History(company.ID)
	if err != nil {
		return nil, err
	}

	view := &dto.SubscriptionView{
		History: history,
		Limits:  s.quotaSvc.Limits(company),
	}

	if company.CurrentSubscriptionID != nil {
		current, err := s.subRepo.GetByID(*company.CurrentSubscriptionID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		view.Current = current
	}

	return view, nil
}

// RequestChange files an upgrade or renewal: a new pending subscription
// row plus a pending payment, both awaiting admin review. The running
// subscription is untouched until confirmation.
func (s *SubscriptionService) RequestChange(company *model.Company, req *dto.SubscribeRequest) (*model.Payment, error) {
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

	// One open request at a time keeps the review queue unambiguous.
	if _, err := s.subRepo.LatestPending(company.ID); err == nil {
		return nil, ErrSubscriptionExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	price := plan.MonthlyPrice
	if duration == model.DurationYearly {
		price = plan.YearlyPrice
	}
	if offer, err := s.pricingRepo.ActiveOfferFor(req.Plan, duration); err == nil && offer != nil && offer.OfferPrice > 0 {
		price = offer.OfferPrice
	}

	var payment *model.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
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

		payment = &model.Payment{
			CompanyID: company.ID,
			Plan:      req.Plan,
			Duration:  duration,
			Amount:    price,
			Codes:     strings.Join(req.Codes, ","),
			Status:    model.PaymentPending,
		}
		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// ResubmitCodes files a fresh pending payment after a rejection,
// reusing the plan and duration of the still-pending subscription.
func (s *SubscriptionService) ResubmitCodes(company *model.Company, codes []string) (*model.Payment, error) {
	sub, err := s.subRepo.LatestPending(company.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPendingSub
		}
		return nil, err
	}

	plan, ok := s.cfg.Subscription.Plans[sub.Plan]
	if !ok {
		return nil, ErrInvalidPlan
	}
	if len(codes) != plan.CodesRequired {
		return nil, ErrWrongCodeCount
	}

	payment := &model.Payment{
		CompanyID: company.ID,
		Plan:      sub.Plan,
		Duration:  sub.Duration,
		Amount:    sub.Price,
		Codes:     strings.Join(codes, ","),
		Status:    model.PaymentPending,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// ListPayments returns the tenant's own payment history.
func (s *SubscriptionService) ListPayments(companyID int64) ([]model.Payment, error) {
	return s.paymentRepo.ListByCompany(companyID)
}

// ListAllPayments pages the admin review queue.
func (s *SubscriptionService) ListAllPayments(status string, page, pageSize int) ([]model.Payment, int64, error) {
	return s.paymentRepo.List(status, page, pageSize)
}

// ConfirmPayment is the activation step. In one transaction: the
// payment flips to confirmed, the company's pending subscription goes
// active with computed start and end dates, the company's current
// subscription pointer moves, and an activation notification is
// written. Email and realtime push happen after commit, best effort.
func (s *SubscriptionService) ConfirmPayment(paymentID int64) (*model.Subscription, error) {
	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != model.PaymentPending {
		return nil, ErrPaymentNotPending
	}

	sub, err := s.subRepo.LatestPending(payment.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPendingSub
		}
		return nil, err
	}

	now := time.Now()
	ends := addDuration(now, sub.Duration)
	if offer, err := s.pricingRepo.ActiveOfferFor(sub.Plan, sub.Duration); err == nil && offer != nil && offer.BonusMonths > 0 {
		ends = ends.AddDate(0, offer.BonusMonths, 0)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Payment{}).Where("id = ?", payment.ID).
			Update("status", model.PaymentConfirmed).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Subscription{}).Where("id = ?", sub.ID).Updates(map[string]interface{}{
			"status":     model.SubscriptionActive,
			"started_at": now,
			"ends_at":    ends,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Company{}).Where("id = ?", payment.CompanyID).
			Update("current_subscription_id", sub.ID).Error; err != nil {
			return err
		}

		notification := &model.Notification{
			CompanyID:  &payment.CompanyID,
			SenderType: model.SenderSubscription,
			Title:      "تم تفعيل اشتراكك",
			Body:       "تم تأكيد الدفع وتفعيل اشتراكك بنجاح. يمكنك الآن استخدام جميع مزايا خطتك.",
		}
		return tx.Create(notification).Error
	})
	if err != nil {
		return nil, err
	}

	sub.Status = model.SubscriptionActive
	sub.StartedAt = &now
	sub.EndsAt = &ends

	s.notifyActivation(payment.CompanyID, sub)

	return sub, nil
}

// RejectPayment marks the payment rejected and tells the tenant. The
// pending subscription row stays pending so the tenant can resubmit
// codes.
func (s *SubscriptionService) RejectPayment(paymentID int64) error {
	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		return err
	}
	if payment.Status != model.PaymentPending {
		return ErrPaymentNotPending
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Payment{}).Where("id = ?", payment.ID).
			Update("status", model.PaymentRejected).Error; err != nil {
			return err
		}

		notification := &model.Notification{
			CompanyID:  &payment.CompanyID,
			SenderType: model.SenderSubscription,
			Title:      "تم رفض طلب الدفع",
			Body:       "لم نتمكن من تأكيد أكواد الشحن المرسلة. يرجى إعادة إرسال أكواد صحيحة أو التواصل مع الدعم.",
		}
		return tx.Create(notification).Error
	})
	if err != nil {
		return err
	}

	go func() {
		company, err := s.companyRepo.GetByID(payment.CompanyID)
		if err != nil {
			return
		}
		user, err := s.userRepo.GetByID(company.UserID)
		if err != nil {
			return
		}
		if err := s.emailSvc.SendPaymentRejected(user.Email, company.CompanyName); err != nil {
			log.Warn().Err(err).Int64("company_id", company.ID).Msg("failed to send rejection email")
		}
	}()
	s.publish(&pubsub.NotificationMessage{
		CompanyID:  payment.CompanyID,
		SenderType: model.SenderSubscription,
		Title:      "تم رفض طلب الدفع",
		Body:       "لم نتمكن من تأكيد أكواد الشحن المرسلة.",
	})

	return nil
}

// OverrideStatus lets an admin force a subscription status. Forcing
// active recomputes the window from now and moves the company pointer.
func (s *SubscriptionService) OverrideStatus(subID int64, status string) (*model.Subscription, error) {
	if !model.ValidSubscriptionStatus(status) {
		return nil, ErrInvalidStatus
	}

	sub, err := s.subRepo.GetByID(subID)
	if err != nil {
		return nil, err
	}

	values := map[string]interface{}{"status": status}
	var started, ends time.Time
	if status == model.SubscriptionActive {
		started = time.Now()
		ends = addDuration(started, sub.Duration)
		values["started_at"] = started
		values["ends_at"] = ends
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Subscription{}).Where("id = ?", sub.ID).Updates(values).Error; err != nil {
			return err
		}
		if status == model.SubscriptionActive {
			return tx.Model(&model.Company{}).Where("id = ?", sub.CompanyID).
				Update("current_subscription_id", sub.ID).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sub.Status = status
	if status == model.SubscriptionActive {
		sub.StartedAt = &started
		sub.EndsAt = &ends
	}
	return sub, nil
}

// ExpireOverdue marks every active subscription past its end date as
// expired and notifies the company. Run by the scheduler and the
// sweeper binary.
func (s *SubscriptionService) ExpireOverdue(ctx context.Context) error {
	overdue, err := s.subRepo.ListOverdue(time.Now())
	if err != nil {
		return err
	}

	for _, sub := range overdue {
		sub := sub
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&model.Subscription{}).Where("id = ?", sub.ID).
				Update("status", model.SubscriptionExpired).Error; err != nil {
				return err
			}

			notification := &model.Notification{
				CompanyID:  &sub.CompanyID,
				SenderType: model.SenderSubscription,
				Title:      "انتهى اشتراكك",
				Body:       "انتهت مدة اشتراكك. يرجى تجديد الاشتراك لاستعادة الوصول إلى لوحة التحكم.",
			}
			return tx.Create(notification).Error
		})
		if err != nil {
			log.Error().Err(err).Int64("subscription_id", sub.ID).Msg("failed to expire subscription")
			continue
		}

		s.publish(&pubsub.NotificationMessage{
			CompanyID:  sub.CompanyID,
			SenderType: model.SenderSubscription,
			Title:      "انتهى اشتراكك",
			Body:       "انتهت مدة اشتراكك. يرجى التجديد.",
		})
		log.Info().Int64("subscription_id", sub.ID).Int64("company_id", sub.CompanyID).Msg("subscription expired")
	}

	return nil
}

// PlanCatalog builds the public pricing page: the plan table plus any
// active offers.
func (s *SubscriptionService) PlanCatalog() ([]dto.PlanCatalogItem, error) {
	items := make([]dto.PlanCatalogItem, 0, len(s.cfg.Subscription.Plans))

	for _, plan := range []string{model.PlanBasic, model.PlanPremium, model.PlanPro} {
		level, ok := s.cfg.Subscription.Plans[plan]
		if !ok {
			continue
		}

		item := dto.PlanCatalogItem{
			Plan:          plan,
			MonthlyPrice:  level.MonthlyPrice,
			YearlyPrice:   level.YearlyPrice,
			CodesRequired: level.CodesRequired,
			Limits: dto.PlanLimits{
				Plan:     plan,
				Projects: level.MaxProjects,
				Services: level.MaxServices,
				Team:     level.MaxTeam,
				Works:    level.MaxWorks,
			},
		}

		offer, err := s.pricingRepo.ActiveOfferFor(plan, model.DurationMonthly)
		if err != nil {
			return nil, err
		}
		item.Offer = offer

		items = append(items, item)
	}

	return items, nil
}

func (s *SubscriptionService) notifyActivation(companyID int64, sub *model.Subscription) {
	go func() {
		company, err := s.companyRepo.GetByID(companyID)
		if err != nil {
			return
		}
		user, err := s.userRepo.GetByID(company.UserID)
		if err != nil {
			return
		}
		endsAt := ""
		if sub.EndsAt != nil {
			endsAt = sub.EndsAt.Format("2006-01-02")
		}
		if err := s.emailSvc.SendSubscriptionActivated(user.Email, company.CompanyName, sub.Plan, endsAt); err != nil {
			log.Warn().Err(err).Int64("company_id", companyID).Msg("failed to send activation email")
		}
	}()

	s.publish(&pubsub.NotificationMessage{
		CompanyID:  companyID,
		SenderType: model.SenderSubscription,
		Title:      "تم تفعيل اشتراكك",
		Body:       "تم تأكيد الدفع وتفعيل اشتراكك بنجاح.",
	})
}

func (s *SubscriptionService) publish(msg *pubsub.NotificationMessage) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, msg); err != nil {
		log.Warn().Err(err).Int64("company_id", msg.CompanyID).Msg("failed to publish notification")
	}
}

// addDuration applies the billing window: one calendar month or one
// calendar year.
func addDuration(from time.Time, duration string) time.Time {
	if duration == model.DurationYearly {
		return from.AddDate(1, 0, 0)
	}
	return from.AddDate(0, 1, 0)
}
