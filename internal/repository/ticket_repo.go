package repository

import (
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
)

type TicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

func (r *TicketRepo) Create(ticket *model.SupportTicket) error {
	return r.db.Create(ticket).Error
}

func (r *TicketRepo) GetByID(id int64) (*model.SupportTicket, error) {
	var ticket model.SupportTicket
	if err := r.db.Preload("Company").First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepo) ListByCompany(companyID int64) ([]model.SupportTicket, error) {
	var tickets []model.SupportTicket
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

// List pages all tickets for the admin queue, new ones first.
func (r *TicketRepo) List(status string, page, pageSize int) ([]model.SupportTicket, int64, error) {
	query := r.db.Model(&model.SupportTicket{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []model.SupportTicket
	err := query.Preload("Company").
		Order("CASE WHEN status = 'new' THEN 0 ELSE 1 END, created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepo) Updates(id int64, values map[string]interface{}) error {
	return r.db.Model(&model.SupportTicket{}).Where("id = ?", id).Updates(values).Error
}

func (r *TicketRepo) CountOpen() (int64, error) {
	var count int64
	err := r.db.Model(&model.SupportTicket{}).
		Where("status != ?", model.TicketClosed).
		Count(&count).Error
	return count, err
}

func (r *TicketRepo) DeleteByCompany(tx *gorm.DB, companyID int64) error {
	return tx.Where("company_id = ?", companyID).Delete(&model.SupportTicket{}).Error
}
