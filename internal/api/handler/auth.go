package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/moqawil/moqawil_server/internal/api/middleware"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/service"
)

type AuthHandler struct {
	authSvc *service.AuthService
}

func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	resp, err := h.authSvc.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.ParamError(c, "البريد الإلكتروني مسجل مسبقاً")
		case errors.Is(err, service.ErrInvalidPlan):
			response.ParamError(c, "الخطة المحددة غير صالحة")
		case errors.Is(err, service.ErrWrongCodeCount):
			response.ParamError(c, "عدد أكواد الشحن غير مطابق للخطة المختارة")
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "تم إنشاء الحساب، طلب الدفع قيد المراجعة", resp)
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	resp, err := h.authSvc.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.AuthError(c, "البريد الإلكتروني أو كلمة المرور غير صحيحة")
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, resp)
}

// ChangePassword POST /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	err := h.authSvc.ChangePassword(middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.ParamError(c, "كلمة المرور الحالية غير صحيحة")
			return
		}
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "تم تغيير كلمة المرور", nil)
}
