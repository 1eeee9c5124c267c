package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/pubsub"
	"github.com/moqawil/moqawil_server/internal/repository"
)

var ErrTicketClosed = errors.New("ticket is closed")

// SupportService handles the tenant-to-admin ticket flow. It is
// reachable even for banned or unpaid companies so they can always
// contact support.
type SupportService struct {
	db         *gorm.DB
	ticketRepo *repository.TicketRepo
	notifSvc   *NotificationService
}

func NewSupportService(db *gorm.DB, ticketRepo *repository.TicketRepo, notifSvc *NotificationService) *SupportService {
	return &SupportService{db: db, ticketRepo: ticketRepo, notifSvc: notifSvc}
}

func (s *SupportService) Create(companyID int64, req *dto.CreateTicketRequest) (*model.SupportTicket, error) {
	ticket := &model.SupportTicket{
		CompanyID: companyID,
		Message:   req.Message,
		Status:    model.TicketNew,
	}
	if err := s.ticketRepo.Create(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *SupportService) ListByCompany(companyID int64) ([]model.SupportTicket, error) {
	return s.ticketRepo.ListByCompany(companyID)
}

func (s *SupportService) List(status string, page, pageSize int) ([]model.SupportTicket, int64, error) {
	return s.ticketRepo.List(status, page, pageSize)
}

// Reply stores the admin answer, flips the ticket to replied and
// notifies the company through the support channel.
func (s *SupportService) Reply(ticketID int64, req *dto.ReplyTicketRequest) (*model.SupportTicket, error) {
	ticket, err := s.ticketRepo.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == model.TicketClosed {
		return nil, ErrTicketClosed
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SupportTicket{}).Where("id = ?", ticket.ID).Updates(map[string]interface{}{
			"reply":  req.Reply,
			"status": model.TicketReplied,
		}).Error; err != nil {
			return err
		}

		notification := &model.Notification{
			CompanyID:  &ticket.CompanyID,
			SenderType: model.SenderSupport,
			Title:      "رد جديد من الدعم الفني",
			Body:       req.Reply,
		}
		return tx.Create(notification).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifSvc.push(&pubsub.NotificationMessage{
		CompanyID:  ticket.CompanyID,
		SenderType: model.SenderSupport,
		Title:      "رد جديد من الدعم الفني",
		Body:       req.Reply,
	})

	ticket.Reply = req.Reply
	ticket.Status = model.TicketReplied
	return ticket, nil
}

func (s *SupportService) Close(ticketID int64) error {
	if _, err := s.ticketRepo.GetByID(ticketID); err != nil {
		return err
	}
	return s.ticketRepo.Updates(ticketID, map[string]interface{}{"status": model.TicketClosed})
}
