package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// App error codes
const (
	CodeSuccess          = 0
	CodeParamError       = 1000
	CodeAuthFailed       = 1001
	CodePermissionDenied = 1002
	CodeResourceNotFound = 1003
	CodeQuotaExceeded    = 1004
	CodeAccountBanned    = 1005
	CodePaymentPending   = 1006
	CodeServerError      = 5000
)

// Default message per code (user-facing, Arabic)
var codeMessages = map[int]string{
	CodeSuccess:          "success",
	CodeParamError:       "بيانات غير صالحة",
	CodeAuthFailed:       "فشل التحقق من الهوية",
	CodePermissionDenied: "ليس لديك صلاحية",
	CodeResourceNotFound: "العنصر غير موجود",
	CodeQuotaExceeded:    "وصلت إلى الحد الأقصى لخطتك الحالية",
	CodeAccountBanned:    "تم حظر هذا الحساب",
	CodePaymentPending:   "اشتراكك قيد المراجعة، بانتظار تأكيد الدفع",
	CodeServerError:      "حدث خطأ، يرجى المحاولة مرة أخرى",
}

// Response is the unified envelope for every endpoint.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type PageData struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Items    interface{} `json:"items"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

func SuccessPage(c *gin.Context, total int64, page, pageSize int, items interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data: PageData{
			Total:    total,
			Page:     page,
			PageSize: pageSize,
			Items:    items,
		},
	})
}

func Error(c *gin.Context, code int, message string) {
	if message == "" {
		message = codeMessages[code]
	}
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

func ParamError(c *gin.Context, message string) {
	Error(c, CodeParamError, message)
}

func AuthError(c *gin.Context, message string) {
	Error(c, CodeAuthFailed, message)
}

func PermissionError(c *gin.Context, message string) {
	Error(c, CodePermissionDenied, message)
}

func NotFoundError(c *gin.Context, message string) {
	Error(c, CodeResourceNotFound, message)
}

func QuotaError(c *gin.Context, message string) {
	Error(c, CodeQuotaExceeded, message)
}

// BannedError is the API equivalent of the /account-banned redirect.
func BannedError(c *gin.Context) {
	Error(c, CodeAccountBanned, "")
}

// PaymentPendingError is the API equivalent of the /payment-pending
// redirect.
func PaymentPendingError(c *gin.Context) {
	Error(c, CodePaymentPending, "")
}

func ServerError(c *gin.Context, message string) {
	Error(c, CodeServerError, message)
}
