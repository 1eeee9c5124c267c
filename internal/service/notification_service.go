package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/pubsub"
	"github.com/moqawil/moqawil_server/internal/repository"
)

var ErrBadSenderType = errors.New("invalid sender type")

type NotificationService struct {
	notifRepo *repository.NotificationRepo
	publisher *pubsub.Publisher
}

func NewNotificationService(notifRepo *repository.NotificationRepo, publisher *pubsub.Publisher) *NotificationService {
	return &NotificationService{notifRepo: notifRepo, publisher: publisher}
}

// Create stores an admin notification and pushes it out. CompanyID 0
// means broadcast to every company.
func (s *NotificationService) Create(req *dto.CreateNotificationRequest) (*model.Notification, error) {
	if !model.ValidSenderType(req.SenderType) {
		return nil, ErrBadSenderType
	}

	n := &model.Notification{
		SenderType: req.SenderType,
		Title:      req.Title,
		Body:       req.Body,
	}
	if req.CompanyID != 0 {
		n.CompanyID = &req.CompanyID
	}

	if err := s.notifRepo.Create(n); err != nil {
		return nil, err
	}

	s.push(&pubsub.NotificationMessage{
		CompanyID:  req.CompanyID,
		SenderType: req.SenderType,
		Title:      req.Title,
		Body:       req.Body,
	})

	return n, nil
}

// ListAll pages every notification for the admin.
func (s *NotificationService) ListAll(page, pageSize int) ([]model.Notification, int64, error) {
	return s.notifRepo.ListAll(page, pageSize)
}

// ListForCompany returns the inbox: targeted rows plus broadcasts.
func (s *NotificationService) ListForCompany(companyID int64, page, pageSize int) ([]model.Notification, int64, error) {
	return s.notifRepo.ListForCompany(companyID, page, pageSize)
}

func (s *NotificationService) UnreadCount(companyID int64) (int64, error) {
	return s.notifRepo.UnreadCount(companyID)
}

func (s *NotificationService) MarkRead(companyID, id int64) error {
	return s.notifRepo.MarkRead(id, companyID)
}

func (s *NotificationService) MarkAllRead(companyID int64) error {
	return s.notifRepo.MarkAllRead(companyID)
}

func (s *NotificationService) push(msg *pubsub.NotificationMessage) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, msg); err != nil {
		log.Warn().Err(err).Int64("company_id", msg.CompanyID).Msg("failed to publish notification")
	}
}
