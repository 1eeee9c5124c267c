package model

import (
	"time"
)

const (
	TicketNew     = "new"
	TicketReplied = "replied"
	TicketClosed  = "closed"
)

type SupportTicket struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CompanyID int64     `gorm:"not null;index" json:"company_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Reply     string    `gorm:"type:text" json:"reply,omitempty"`
	Status    string    `gorm:"size:20;not null;default:new;index" json:"status"` // new, replied, closed
	CreatedAt time.Time `json:"created_at"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}
