package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/service"
)

// AdminHandler is the whole admin surface: company moderation, the
// payment review queue, subscription overrides, support, broadcast
// notifications, pricing and platform statistics.
type AdminHandler struct {
	companySvc *service.CompanyService
	subSvc     *service.SubscriptionService
	supportSvc *service.SupportService
	notifSvc   *service.NotificationService
	pricingSvc *service.PricingService
	statsSvc   *service.StatsService
}

func NewAdminHandler(
	companySvc *service.CompanyService,
	subSvc *service.SubscriptionService,
	supportSvc *service.SupportService,
	notifSvc *service.NotificationService,
	pricingSvc *service.PricingService,
	statsSvc *service.StatsService,
) *AdminHandler {
	return &AdminHandler{
		companySvc: companySvc,
		subSvc:     subSvc,
		supportSvc: supportSvc,
		notifSvc:   notifSvc,
		pricingSvc: pricingSvc,
		statsSvc:   statsSvc,
	}
}

// Companies

// ListCompanies GET /api/v1/admin/companies
func (h *AdminHandler) ListCompanies(c *gin.Context) {
	page, pageSize := pagination(c)
	items, total, err := h.companySvc.ListAll(
		c.Query("city"), c.Query("category"), c.Query("keyword"), page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.SuccessPage(c, total, page, pageSize, items)
}

// VerificationQueue GET /api/v1/admin/companies/unverified
func (h *AdminHandler) VerificationQueue(c *gin.Context) {
	page, pageSize := pagination(c)
	companies, total, err := h.companySvc.ListUnverified(page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.SuccessPage(c, total, page, pageSize, companies)
}

// ModerateCompany PUT /api/v1/admin/companies/:id/moderation
func (h *AdminHandler) ModerateCompany(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	company, err := h.companySvc.Moderate(id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "")
			return
		}
		response.ServerError(c, "")
		return
	}
	response.Success(c, company)
}

// DeleteCompany DELETE /api/v1/admin/companies/:id
func (h *AdminHandler) DeleteCompany(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.companySvc.Delete(id); err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			response.NotFoundError(c, "")
			return
		}
		response.ServerError(c, "")
		return
	}
	response.SuccessWithMessage(c, "تم حذف الشركة وجميع بياناتها", nil)
}

// Payments

// ListPayments GET /api/v1/admin/payments?status=pending
func (h *AdminHandler) ListPayments(c *gin.Context) {
	page, pageSize := pagination(c)
	payments, total, err := h.subSvc.ListAllPayments(c.Query("status"), page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.SuccessPage(c, total, page, pageSize, payments)
}

// ConfirmPayment POST /api/v1/admin/payments/:id/confirm
func (h *AdminHandler) ConfirmPayment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	sub, err := h.subSvc.ConfirmPayment(id)
	if err != nil {
		writeSubscriptionError(c, err)
		return
	}
	response.SuccessWithMessage(c, "تم تأكيد الدفع وتفعيل الاشتراك", sub)
}

// RejectPayment POST /api/v1/admin/payments/:id/reject
func (h *AdminHandler) RejectPayment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.subSvc.RejectPayment(id); err != nil {
		writeSubscriptionError(c, err)
		return
	}
	response.SuccessWithMessage(c, "تم رفض طلب الدفع", nil)
}

// Subscriptions

// OverrideSubscription PUT /api/v1/admin/subscriptions/:id/status
func (h *AdminHandler) OverrideSubscription(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	sub, err := h.subSvc.OverrideStatus(id, req.Status)
	if err != nil {
		writeSubscriptionError(c, err)
		return
	}
	response.Success(c, sub)
}

// Support

// ListTickets GET /api/v1/admin/support/tickets?status=new
func (h *AdminHandler) ListTickets(c *gin.Context) {
	page, pageSize := pagination(c)
	tickets, total, err := h.supportSvc.List(c.Query("status"), page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.SuccessPage(c, total, page, pageSize, tickets)
}

// ReplyTicket POST /api/v1/admin/support/tickets/:id/reply
func (h *AdminHandler) ReplyTicket(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ReplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	ticket, err := h.supportSvc.Reply(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFoundError(c, "")
		case errors.Is(err, service.ErrTicketClosed):
			response.ParamError(c, "التذكرة مغلقة")
		default:
			response.ServerError(c, "")
		}
		return
	}
	response.Success(c, ticket)
}

// CloseTicket POST /api/v1/admin/support/tickets/:id/close
func (h *AdminHandler) CloseTicket(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.supportSvc.Close(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "")
			return
		}
		response.ServerError(c, "")
		return
	}
	response.Success(c, nil)
}

// Notifications

// ListNotifications GET /api/v1/admin/notifications
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	page, pageSize := pagination(c)
	items, total, err := h.notifSvc.ListAll(page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.SuccessPage(c, total, page, pageSize, items)
}

// CreateNotification POST /api/v1/admin/notifications
// company_id 0 broadcasts to every company.
func (h *AdminHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	n, err := h.notifSvc.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrBadSenderType) {
			response.ParamError(c, "")
			return
		}
		response.ServerError(c, "")
		return
	}
	response.SuccessWithMessage(c, "تم إرسال الإشعار", n)
}

// Promo codes

func (h *AdminHandler) ListPromoCodes(c *gin.Context) {
	codes, err := h.pricingSvc.ListPromoCodes()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, codes)
}

func (h *AdminHandler) CreatePromoCode(c *gin.Context) {
	var req dto.PromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	code, err := h.pricingSvc.CreatePromoCode(&req)
	if err != nil {
		if errors.Is(err, service.ErrPromoCodeExists) {
			response.ParamError(c, "كود الخصم موجود مسبقاً")
			return
		}
		response.ServerError(c, "")
		return
	}
	response.Success(c, code)
}

func (h *AdminHandler) UpdatePromoCode(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.PromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	code, err := h.pricingSvc.UpdatePromoCode(id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "")
			return
		}
		response.ServerError(c, "")
		return
	}
	response.Success(c, code)
}

func (h *AdminHandler) DeletePromoCode(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.pricingSvc.DeletePromoCode(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "")
			return
		}
		response.ServerError(c, "")
		return
	}
	response.Success(c, nil)
}

// Plan offers

func (h *AdminHandler) ListPlanOffers(c *gin.Context) {
	offers, err := h.pricingSvc.ListPlanOffers(false)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, offers)
}

func (h *AdminHandler) CreatePlanOffer(c *gin.Context) {
	var req dto.PlanOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	offer, err := h.pricingSvc.CreatePlanOffer(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlan) {
			response.ParamError(c, "")
			return
		}
		response.ServerError(c, "")
		return
	}
	response.Success(c, offer)
}

func (h *AdminHandler) UpdatePlanOffer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.PlanOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	offer, err := h.pricingSvc.UpdatePlanOffer(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.NotFoundError(c, "")
		case errors.Is(err, service.ErrInvalidPlan):
			response.ParamError(c, "")
		default:
			response.ServerError(c, "")
		}
		return
	}
	response.Success(c, offer)
}

func (h *AdminHandler) DeletePlanOffer(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.pricingSvc.DeletePlanOffer(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "")
			return
		}
		response.ServerError(c, "")
		return
	}
	response.Success(c, nil)
}

// Site settings

func (h *AdminHandler) ListSettings(c *gin.Context) {
	settings, err := h.pricingSvc.ListSettings()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, settings)
}

func (h *AdminHandler) UpsertSetting(c *gin.Context) {
	var req dto.SiteSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}
	if err := h.pricingSvc.UpsertSetting(&req); err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, nil)
}

// Statistics

// Overview GET /api/v1/admin/statistics
func (h *AdminHandler) Overview(c *gin.Context) {
	overview, err := h.statsSvc.AdminOverview()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, overview)
}
