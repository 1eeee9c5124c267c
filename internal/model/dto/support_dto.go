package dto

type CreateTicketRequest struct {
	Message string `json:"message" binding:"required"`
}

type ReplyTicketRequest struct {
	Reply string `json:"reply" binding:"required"`
}
