package dto

type PromoCodeRequest struct {
	Code           string  `json:"code" binding:"required"`
	DiscountAmount float64 `json:"discount_amount"`
	BonusMonths    int     `json:"bonus_months"`
	MaxUses        int     `json:"max_uses"`
	IsActive       *bool   `json:"is_active"`
}

type PlanOfferRequest struct {
	Plan          string  `json:"plan" binding:"required"`
	Duration      string  `json:"duration" binding:"required"`
	OfferType     string  `json:"offer_type"`
	OriginalPrice float64 `json:"original_price" binding:"required"`
	OfferPrice    float64 `json:"offer_price"`
	BonusMonths   int     `json:"bonus_months"`
	IsActive      *bool   `json:"is_active"`
}

type SiteSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}
