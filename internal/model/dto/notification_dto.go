package dto

// CreateNotificationRequest with CompanyID == 0 broadcasts to every
// company.
type CreateNotificationRequest struct {
	CompanyID  int64  `json:"company_id"`
	SenderType string `json:"sender_type" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Body       string `json:"body" binding:"required"`
}
