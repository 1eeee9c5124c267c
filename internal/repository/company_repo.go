package repository

import (
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
)

type CompanyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

func (r *CompanyRepo) GetByID(id int64) (*model.Company, error) {
	var company model.Company
	if err := r.db.First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepo) GetByUserID(userID int64) (*model.Company, error) {
	var company model.Company
	if err := r.db.Where("user_id = ?", userID).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepo) GetBySlug(slug string) (*model.Company, error) {
	var company model.Company
	if err := r.db.Where("slug = ?", slug).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepo) ExistsBySlug(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Company{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns companies page by page, optionally filtered by city,
// category and a name keyword. Public listings pass bannedOnly=false
// so banned companies never show up.
func (r *CompanyRepo) List(city, category, keyword string, includeBanned bool, page, pageSize int) ([]model.Company, int64, error) {
	query := r.db.Model(&model.Company{})

	if !includeBanned {
		query = query.Where("banned = ?", false)
	}
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if keyword != "" {
		query = query.Where("company_name LIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []model.Company
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (r *CompanyRepo) ListUnverified(page, pageSize int) ([]model.Company, int64, error) {
	query := r.db.Model(&model.Company{}).Where("verified = ? AND banned = ?", false, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []model.Company
	err := query.Order("created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (r *CompanyRepo) Updates(id int64, values map[string]interface{}) error {
	return r.db.Model(&model.Company{}).Where("id = ?", id).Updates(values).Error
}

func (r *CompanyRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Company{}).Count(&count).Error
	return count, err
}

func (r *CompanyRepo) CountWhere(query string, args ...interface{}) (int64, error) {
	var count int64
	err := r.db.Model(&model.Company{}).Where(query, args...).Count(&count).Error
	return count, err
}
