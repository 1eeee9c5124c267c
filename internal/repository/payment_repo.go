package repository

import (
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
)

type PaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) Create(payment *model.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepo) GetByID(id int64) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.Preload("Company").First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepo) ListByCompany(companyID int64) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

// List pages all payments for the admin review queue, optionally
// filtered by status. Pending first, oldest pending on top.
func (r *PaymentRepo) List(status string, page, pageSize int) ([]model.Payment, int64, error) {
	query := r.db.Model(&model.Payment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []model.Payment
	err := query.Preload("Company").
		Order("CASE WHEN status = 'pending' THEN 0 ELSE 1 END, created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *PaymentRepo) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Payment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *PaymentRepo) ConfirmedRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&model.Payment{}).
		Where("status = ?", model.PaymentConfirmed).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
