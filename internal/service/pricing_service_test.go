package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/repository"
	"github.com/moqawil/moqawil_server/internal/testutil"
)

func TestPromoCodeNormalizedAndUnique(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPricingService(repository.NewPricingRepo(db))

	code, err := svc.CreatePromoCode(&dto.PromoCodeRequest{Code: "  ramadan25 ", DiscountAmount: 10})
	require.NoError(t, err)
	assert.Equal(t, "RAMADAN25", code.Code)
	assert.True(t, code.IsActive)

	_, err = svc.CreatePromoCode(&dto.PromoCodeRequest{Code: "RAMADAN25"})
	assert.ErrorIs(t, err, ErrPromoCodeExists)
}

func TestPlanOfferValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPricingService(repository.NewPricingRepo(db))

	_, err := svc.CreatePlanOffer(&dto.PlanOfferRequest{
		Plan: "enterprise", Duration: model.DurationMonthly, OriginalPrice: 100,
	})
	assert.ErrorIs(t, err, ErrInvalidPlan)

	offer, err := svc.CreatePlanOffer(&dto.PlanOfferRequest{
		Plan: model.PlanPremium, Duration: model.DurationMonthly,
		OriginalPrice: 100, OfferPrice: 80,
	})
	require.NoError(t, err)
	assert.Equal(t, "discount", offer.OfferType)
}

func TestActiveOfferAffectsPlanCatalog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	pricingSvc := NewPricingService(repository.NewPricingRepo(db))
	subSvc := newSubService(db)

	_, err := pricingSvc.CreatePlanOffer(&dto.PlanOfferRequest{
		Plan: model.PlanBasic, Duration: model.DurationMonthly,
		OriginalPrice: 50, OfferPrice: 40,
	})
	require.NoError(t, err)

	items, err := subSvc.PlanCatalog()
	require.NoError(t, err)
	require.NotNil(t, items[0].Offer)
	assert.Equal(t, float64(40), items[0].Offer.OfferPrice)
	assert.Nil(t, items[1].Offer)
}

func TestSiteSettingUpsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPricingService(repository.NewPricingRepo(db))

	require.NoError(t, svc.UpsertSetting(&dto.SiteSettingRequest{Key: "payment_phone", Value: "0911111111"}))
	require.NoError(t, svc.UpsertSetting(&dto.SiteSettingRequest{Key: "payment_phone", Value: "0922222222"}))

	setting, err := svc.GetSetting("payment_phone")
	require.NoError(t, err)
	assert.Equal(t, "0922222222", setting.Value)

	settings, err := svc.ListSettings()
	require.NoError(t, err)
	assert.Len(t, settings, 1)
}
