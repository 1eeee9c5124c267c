package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/service"
)

// PublicHandler serves the unauthenticated surface: the company
// directory, public profiles, click tracking and the plan catalog.
type PublicHandler struct {
	companySvc *service.CompanyService
	subSvc     *service.SubscriptionService
	pricingSvc *service.PricingService
}

func NewPublicHandler(companySvc *service.CompanyService, subSvc *service.SubscriptionService, pricingSvc *service.PricingService) *PublicHandler {
	return &PublicHandler{companySvc: companySvc, subSvc: subSvc, pricingSvc: pricingSvc}
}

// ListCompanies GET /api/v1/companies
func (h *PublicHandler) ListCompanies(c *gin.Context) {
	page, pageSize := pagination(c)
	companies, total, err := h.companySvc.ListPublic(
		c.Query("city"), c.Query("category"), c.Query("keyword"), page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.SuccessPage(c, total, page, pageSize, companies)
}

// GetProfile GET /api/v1/companies/:slug
// Loading the profile counts as one visit.
func (h *PublicHandler) GetProfile(c *gin.Context) {
	profile, err := h.companySvc.PublicProfile(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			response.NotFoundError(c, "")
			return
		}
		response.ServerError(c, "")
		return
	}
	response.Success(c, profile)
}

// TrackClick POST /api/v1/companies/:slug/clicks/:type
func (h *PublicHandler) TrackClick(c *gin.Context) {
	err := h.companySvc.TrackClick(c.Param("slug"), c.Param("type"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompanyNotFound):
			response.NotFoundError(c, "")
		case errors.Is(err, service.ErrUnknownClick):
			response.ParamError(c, "")
		default:
			response.ServerError(c, "")
		}
		return
	}
	response.Success(c, nil)
}

// PlanCatalog GET /api/v1/plans
func (h *PublicHandler) PlanCatalog(c *gin.Context) {
	items, err := h.subSvc.PlanCatalog()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, items)
}

// GetSetting GET /api/v1/settings/:key
// Public site settings (contact numbers, announcement banners).
func (h *PublicHandler) GetSetting(c *gin.Context) {
	setting, err := h.pricingSvc.GetSetting(c.Param("key"))
	if err != nil {
		response.NotFoundError(c, "")
		return
	}
	response.Success(c, setting)
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
