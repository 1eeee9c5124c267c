package service

import (
	"errors"
	"strings"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/repository"
)

var ErrPromoCodeExists = errors.New("promo code already exists")

// PricingService is the admin surface for promo codes, plan offers and
// site settings.
type PricingService struct {
	pricingRepo *repository.PricingRepo
}

func NewPricingService(pricingRepo *repository.PricingRepo) *PricingService {
	return &PricingService{pricingRepo: pricingRepo}
}

// Promo codes

func (s *PricingService) CreatePromoCode(req *dto.PromoCodeRequest) (*model.PromoCode, error) {
	code := &model.PromoCode{
		Code:           strings.ToUpper(strings.TrimSpace(req.Code)),
		DiscountAmount: req.DiscountAmount,
		BonusMonths:    req.BonusMonths,
		MaxUses:        req.MaxUses,
		IsActive:       true,
	}
	if req.IsActive != nil {
		code.IsActive = *req.IsActive
	}

	if err := s.pricingRepo.CreatePromoCode(code); err != nil {
		if isDuplicateErr(err) {
			return nil, ErrPromoCodeExists
		}
		return nil, err
	}
	return code, nil
}

func (s *PricingService) ListPromoCodes() ([]model.PromoCode, error) {
	return s.pricingRepo.ListPromoCodes()
}

func (s *PricingService) UpdatePromoCode(id int64, req *dto.PromoCodeRequest) (*model.PromoCode, error) {
	code, err := s.pricingRepo.GetPromoCode(id)
	if err != nil {
		return nil, err
	}

	code.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	code.DiscountAmount = req.DiscountAmount
	code.BonusMonths = req.BonusMonths
	code.MaxUses = req.MaxUses
	if req.IsActive != nil {
		code.IsActive = *req.IsActive
	}

	if err := s.pricingRepo.UpdatePromoCode(code); err != nil {
		return nil, err
	}
	return code, nil
}

func (s *PricingService) DeletePromoCode(id int64) error {
	return s.pricingRepo.DeletePromoCode(id)
}

// Plan offers

func (s *PricingService) CreatePlanOffer(req *dto.PlanOfferRequest) (*model.PlanOffer, error) {
	if !model.ValidPlan(req.Plan) || !model.ValidDuration(req.Duration) {
		return nil, ErrInvalidPlan
	}

	offer := &model.PlanOffer{
		Plan:          req.Plan,
		Duration:      req.Duration,
		OfferType:     req.OfferType,
		OriginalPrice: req.OriginalPrice,
		OfferPrice:    req.OfferPrice,
		BonusMonths:   req.BonusMonths,
		IsActive:      true,
	}
	if offer.OfferType == "" {
		offer.OfferType = "discount"
	}
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}

	if err := s.pricingRepo.CreatePlanOffer(offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *PricingService) ListPlanOffers(activeOnly bool) ([]model.PlanOffer, error) {
	return s.pricingRepo.ListPlanOffers(activeOnly)
}

func (s *PricingService) UpdatePlanOffer(id int64, req *dto.PlanOfferRequest) (*model.PlanOffer, error) {
	if !model.ValidPlan(req.Plan) || !model.ValidDuration(req.Duration) {
		return nil, ErrInvalidPlan
	}

	offer, err := s.pricingRepo.GetPlanOffer(id)
	if err != nil {
		return nil, err
	}

	offer.Plan = req.Plan
	offer.Duration = req.Duration
	if req.OfferType != "" {
		offer.OfferType = req.OfferType
	}
	offer.OriginalPrice = req.OriginalPrice
	offer.OfferPrice = req.OfferPrice
	offer.BonusMonths = req.BonusMonths
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}

	if err := s.pricingRepo.UpdatePlanOffer(offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *PricingService) DeletePlanOffer(id int64) error {
	return s.pricingRepo.DeletePlanOffer(id)
}

// Site settings

func (s *PricingService) UpsertSetting(req *dto.SiteSettingRequest) error {
	return s.pricingRepo.UpsertSetting(req.Key, req.Value)
}

func (s *PricingService) ListSettings() ([]model.SiteSetting, error) {
	return s.pricingRepo.ListSettings()
}

func (s *PricingService) GetSetting(key string) (*model.SiteSetting, error) {
	return s.pricingRepo.GetSetting(key)
}

// isDuplicateErr matches unique constraint violations across mysql and
// sqlite without importing driver error types.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
