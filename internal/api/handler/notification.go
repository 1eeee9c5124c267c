package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/api/middleware"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/service"
)

type NotificationHandler struct {
	notifSvc *service.NotificationService
}

func NewNotificationHandler(notifSvc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifSvc: notifSvc}
}

// List GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)
	items, total, err := h.notifSvc.ListForCompany(middleware.GetCompany(c).ID, page, pageSize)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.SuccessPage(c, total, page, pageSize, items)
}

// UnreadCount GET /api/v1/notifications/unread
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notifSvc.UnreadCount(middleware.GetCompany(c).ID)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, gin.H{"count": count})
}

// MarkRead PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.notifSvc.MarkRead(middleware.GetCompany(c).ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundError(c, "")
			return
		}
		response.ServerError(c, "")
		return
	}
	response.Success(c, nil)
}

// MarkAllRead PUT /api/v1/notifications/read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifSvc.MarkAllRead(middleware.GetCompany(c).ID); err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, nil)
}
