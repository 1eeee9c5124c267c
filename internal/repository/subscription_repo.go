package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
)

type SubscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

func (r *SubscriptionRepo) GetByID(id int64) (*model.Subscription, error) {
	var sub model.Subscription
	if err := r.db.First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// History returns every subscription row of a company, newest first.
func (r *SubscriptionRepo) History(companyID int64) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepo) LatestPending(companyID int64) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("company_id = ? AND status = ?", companyID, model.SubscriptionPending).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListOverdue finds active subscriptions whose end date has passed.
func (r *SubscriptionRepo) ListOverdue(now time.Time) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.Where("status = ? AND ends_at IS NOT NULL AND ends_at < ?", model.SubscriptionActive, now).
		Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepo) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
