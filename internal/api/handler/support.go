package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/moqawil/moqawil_server/internal/api/middleware"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/service"
)

type SupportHandler struct {
	supportSvc *service.SupportService
}

func NewSupportHandler(supportSvc *service.SupportService) *SupportHandler {
	return &SupportHandler{supportSvc: supportSvc}
}

// Create POST /api/v1/support/tickets
func (h *SupportHandler) Create(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	ticket, err := h.supportSvc.Create(middleware.GetCompany(c).ID, &req)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.SuccessWithMessage(c, "تم إرسال رسالتك إلى الدعم الفني", ticket)
}

// List GET /api/v1/support/tickets
func (h *SupportHandler) List(c *gin.Context) {
	tickets, err := h.supportSvc.ListByCompany(middleware.GetCompany(c).ID)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, tickets)
}
