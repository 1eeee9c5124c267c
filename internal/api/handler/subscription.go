package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/api/middleware"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/service"
)

// SubscriptionHandler covers the tenant side of the subscription
// workflow. It sits behind RequireCompany but not behind
// RequireActiveSubscription, unpaid tenants must reach it.
type SubscriptionHandler struct {
	subSvc *service.SubscriptionService
}

func NewSubscriptionHandler(subSvc *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subSvc: subSvc}
}

// Get GET /api/v1/subscription
func (h *SubscriptionHandler) Get(c *gin.Context) {
	view, err := h.subSvc.View(middleware.GetCompany(c))
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, view)
}

// RequestChange POST /api/v1/subscription
// Files an upgrade or renewal request with fresh top-up codes.
func (h *SubscriptionHandler) RequestChange(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	payment, err := h.subSvc.RequestChange(middleware.GetCompany(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlan):
			response.ParamError(c, "الخطة المحددة غير صالحة")
		case errors.Is(err, service.ErrWrongCodeCount):
			response.ParamError(c, "عدد أكواد الشحن غير مطابق للخطة المختارة")
		case errors.Is(err, service.ErrSubscriptionExists):
			response.ParamError(c, "لديك طلب اشتراك قيد المراجعة بالفعل")
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "تم استلام الطلب، بانتظار تأكيد الدفع", payment)
}

// ResubmitCodes POST /api/v1/subscription/codes
// New codes after a rejected payment.
func (h *SubscriptionHandler) ResubmitCodes(c *gin.Context) {
	var req dto.ResubmitCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	payment, err := h.subSvc.ResubmitCodes(middleware.GetCompany(c), req.Codes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPendingSub):
			response.ParamError(c, "لا يوجد طلب اشتراك قيد المراجعة")
		case errors.Is(err, service.ErrWrongCodeCount):
			response.ParamError(c, "عدد أكواد الشحن غير مطابق للخطة المختارة")
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "تم إرسال الأكواد، بانتظار تأكيد الدفع", payment)
}

// ListPayments GET /api/v1/subscription/payments
func (h *SubscriptionHandler) ListPayments(c *gin.Context) {
	payments, err := h.subSvc.ListPayments(middleware.GetCompany(c).ID)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, payments)
}

func writeSubscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFoundError(c, "")
	case errors.Is(err, service.ErrPaymentNotPending):
		response.ParamError(c, "طلب الدفع ليس قيد المراجعة")
	case errors.Is(err, service.ErrNoPendingSub):
		response.ParamError(c, "لا يوجد طلب اشتراك قيد المراجعة لهذه الشركة")
	case errors.Is(err, service.ErrInvalidStatus):
		response.ParamError(c, "")
	default:
		response.ServerError(c, "")
	}
}
