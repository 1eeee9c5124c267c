package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moqawil/moqawil_server/internal/model"
)

type StatisticRepo struct {
	db *gorm.DB
}

func NewStatisticRepo(db *gorm.DB) *StatisticRepo {
	return &StatisticRepo{db: db}
}

// IncrementVisit bumps today's visit counter with an atomic upsert on
// (company_id, date). Concurrent visitors never lose an increment.
func (r *StatisticRepo) IncrementVisit(companyID int64) error {
	return r.increment(companyID, "visits")
}

// IncrementClick bumps one of the click counters. column must be a
// known counter name, callers translate the public click type first.
func (r *StatisticRepo) IncrementClick(companyID int64, column string) error {
	return r.increment(companyID, column)
}

func (r *StatisticRepo) increment(companyID int64, column string) error {
	today := time.Now().Format("2006-01-02")

	row := model.Statistic{CompanyID: companyID, Date: today}
	switch column {
	case "visits":
		row.Visits = 1
	case "phone_clicks":
		row.PhoneClicks = 1
	case "whatsapp_clicks":
		row.WhatsappClicks = 1
	case "facebook_clicks":
		row.FacebookClicks = 1
	default:
		return gorm.ErrInvalidField
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			column: gorm.Expr(column+" + ?", 1),
		}),
	}).Create(&row).Error
}

// Range returns the daily rows of a company between two dates
// inclusive, oldest first.
func (r *StatisticRepo) Range(companyID int64, from, to string) ([]model.Statistic, error) {
	var rows []model.Statistic
	err := r.db.Where("company_id = ? AND date >= ? AND date <= ?", companyID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *StatisticRepo) TotalVisits() (int64, error) {
	var total int64
	err := r.db.Model(&model.Statistic{}).
		Select("COALESCE(SUM(visits), 0)").
		Scan(&total).Error
	return total, err
}

func (r *StatisticRepo) DeleteByCompany(tx *gorm.DB, companyID int64) error {
	return tx.Where("company_id = ?", companyID).Delete(&model.Statistic{}).Error
}
