package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moqawil/moqawil_server/internal/model"
)

// PricingRepo covers the admin-managed pricing tables: promo codes,
// plan offers and site settings.
type PricingRepo struct {
	db *gorm.DB
}

func NewPricingRepo(db *gorm.DB) *PricingRepo {
	return &PricingRepo{db: db}
}

// Promo codes

func (r *PricingRepo) CreatePromoCode(code *model.PromoCode) error {
	return r.db.Create(code).Error
}

func (r *PricingRepo) GetPromoCode(id int64) (*model.PromoCode, error) {
	var code model.PromoCode
	if err := r.db.First(&code, id).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *PricingRepo) ListPromoCodes() ([]model.PromoCode, error) {
	var codes []model.PromoCode
	err := r.db.Order("created_at DESC").Find(&codes).Error
	return codes, err
}

func (r *PricingRepo) UpdatePromoCode(code *model.PromoCode) error {
	return r.db.Save(code).Error
}

func (r *PricingRepo) DeletePromoCode(id int64) error {
	result := r.db.Delete(&model.PromoCode{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Plan offers

func (r *PricingRepo) CreatePlanOffer(offer *model.PlanOffer) error {
	return r.db.Create(offer).Error
}

func (r *PricingRepo) GetPlanOffer(id int64) (*model.PlanOffer, error) {
	var offer model.PlanOffer
	if err := r.db.First(&offer, id).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *PricingRepo) ListPlanOffers(activeOnly bool) ([]model.PlanOffer, error) {
	query := r.db.Model(&model.PlanOffer{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var offers []model.PlanOffer
	err := query.Order("created_at DESC").Find(&offers).Error
	return offers, err
}

// ActiveOfferFor returns the newest active offer for a plan/duration
// pair, or nil when there is none.
func (r *PricingRepo) ActiveOfferFor(plan, duration string) (*model.PlanOffer, error) {
	var offer model.PlanOffer
	err := r.db.Where("plan = ? AND duration = ? AND is_active = ?", plan, duration, true).
		Order("created_at DESC").
		First(&offer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}

func (r *PricingRepo) UpdatePlanOffer(offer *model.PlanOffer) error {
	return r.db.Save(offer).Error
}

func (r *PricingRepo) DeletePlanOffer(id int64) error {
	result := r.db.Delete(&model.PlanOffer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Site settings

func (r *PricingRepo) UpsertSetting(key, value string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model.SiteSetting{Key: key, Value: value}).Error
}

func (r *PricingRepo) GetSetting(key string) (*model.SiteSetting, error) {
	var setting model.SiteSetting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *PricingRepo) ListSettings() ([]model.SiteSetting, error) {
	var settings []model.SiteSetting
	err := r.db.Order("key ASC").Find(&settings).Error
	return settings, err
}
