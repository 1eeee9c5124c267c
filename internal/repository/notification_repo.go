package repository

import (
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
)

type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Create(n *model.Notification) error {
	return r.db.Create(n).Error
}

// ListForCompany returns the company's own notifications plus
// broadcasts (company_id IS NULL), newest first.
func (r *NotificationRepo) ListForCompany(companyID int64, page, pageSize int) ([]model.Notification, int64, error) {
	query := r.db.Model(&model.Notification{}).
		Where("company_id = ? OR company_id IS NULL", companyID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.Notification
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListAll pages every notification for the admin view, broadcasts
// included.
func (r *NotificationRepo) ListAll(page, pageSize int) ([]model.Notification, int64, error) {
	var total int64
	if err := r.db.Model(&model.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.Notification
	err := r.db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *NotificationRepo) UnreadCount(companyID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("(company_id = ? OR company_id IS NULL) AND is_read = ?", companyID, false).
		Count(&count).Error
	return count, err
}

// MarkRead flips one notification addressed to the company. Broadcast
// rows are shared, so only targeted rows can be marked.
func (r *NotificationRepo) MarkRead(id, companyID int64) error {
	result := r.db.Model(&model.Notification{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepo) MarkAllRead(companyID int64) error {
	return r.db.Model(&model.Notification{}).
		Where("company_id = ? AND is_read = ?", companyID, false).
		Update("is_read", true).Error
}

func (r *NotificationRepo) DeleteByCompany(tx *gorm.DB, companyID int64) error {
	return tx.Where("company_id = ?", companyID).Delete(&model.Notification{}).Error
}
