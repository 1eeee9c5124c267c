package repository

import (
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
)

// ContentRepo groups the per-company profile content tables. They all
// follow the same shape (create, list by company, ownership-checked
// update/delete, count for quota checks).
type ContentRepo struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

// Projects

func (r *ContentRepo) CreateProject(p *model.Project) error {
	return r.db.Create(p).Error
}

func (r *ContentRepo) ListProjects(companyID int64) ([]model.Project, error) {
	var items []model.Project
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepo) GetProject(id, companyID int64) (*model.Project, error) {
	var item model.Project
	if err := r.db.Where("id = ? AND company_id = ?", id, companyID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ContentRepo) UpdateProject(p *model.Project) error {
	return r.db.Save(p).Error
}

func (r *ContentRepo) DeleteProject(id, companyID int64) error {
	return r.deleteOwned(&model.Project{}, id, companyID)
}

func (r *ContentRepo) CountProjects(companyID int64) (int64, error) {
	return r.countOwned(&model.Project{}, companyID)
}

// Services

func (r *ContentRepo) CreateService(s *model.Service) error {
	return r.db.Create(s).Error
}

func (r *ContentRepo) ListServices(companyID int64) ([]model.Service, error) {
	var items []model.Service
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepo) GetService(id, companyID int64) (*model.Service, error) {
	var item model.Service
	if err := r.db.Where("id = ? AND company_id = ?", id, companyID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ContentRepo) UpdateService(s *model.Service) error {
	return r.db.Save(s).Error
}

func (r *ContentRepo) DeleteService(id, companyID int64) error {
	return r.deleteOwned(&model.Service{}, id, companyID)
}

func (r *ContentRepo) CountServices(companyID int64) (int64, error) {
	return r.countOwned(&model.Service{}, companyID)
}

// Team members

func (r *ContentRepo) CreateTeamMember(m *model.TeamMember) error {
	return r.db.Create(m).Error
}

func (r *ContentRepo) ListTeamMembers(companyID int64) ([]model.TeamMember, error) {
	var items []model.TeamMember
	err := r.db.Where("company_id = ?", companyID).Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *ContentRepo) GetTeamMember(id, companyID int64) (*model.TeamMember, error) {
	var item model.TeamMember
	if err := r.db.Where("id = ? AND company_id = ?", id, companyID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ContentRepo) UpdateTeamMember(m *model.TeamMember) error {
	return r.db.Save(m).Error
}

func (r *ContentRepo) DeleteTeamMember(id, companyID int64) error {
	return r.deleteOwned(&model.TeamMember{}, id, companyID)
}

func (r *ContentRepo) CountTeamMembers(companyID int64) (int64, error) {
	return r.countOwned(&model.TeamMember{}, companyID)
}

// Works

func (r *ContentRepo) CreateWork(w *model.Work) error {
	return r.db.Create(w).Error
}

func (r *ContentRepo) ListWorks(companyID int64) ([]model.Work, error) {
	var items []model.Work
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepo) GetWork(id, companyID int64) (*model.Work, error) {
	var item model.Work
	if err := r.db.Where("id = ? AND company_id = ?", id, companyID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ContentRepo) UpdateWork(w *model.Work) error {
	return r.db.Save(w).Error
}

func (r *ContentRepo) DeleteWork(id, companyID int64) error {
	return r.deleteOwned(&model.Work{}, id, companyID)
}

func (r *ContentRepo) CountWorks(companyID int64) (int64, error) {
	return r.countOwned(&model.Work{}, companyID)
}

// Gallery

func (r *ContentRepo) CreateGalleryImage(img *model.GalleryImage) error {
	return r.db.Create(img).Error
}

func (r *ContentRepo) ListGallery(companyID int64) ([]model.GalleryImage, error) {
	var items []model.GalleryImage
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepo) DeleteGalleryImage(id, companyID int64) error {
	return r.deleteOwned(&model.GalleryImage{}, id, companyID)
}

// DeleteAllByCompany wipes every content row of a company inside tx.
// Used when an admin deletes a company.
func (r *ContentRepo) DeleteAllByCompany(tx *gorm.DB, companyID int64) error {
	for _, m := range []interface{}{
		&model.Project{}, &model.Service{}, &model.TeamMember{},
		&model.Work{}, &model.GalleryImage{},
	} {
		if err := tx.Where("company_id = ?", companyID).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *ContentRepo) deleteOwned(m interface{}, id, companyID int64) error {
	result := r.db.Where("id = ? AND company_id = ?", id, companyID).Delete(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContentRepo) countOwned(m interface{}, companyID int64) (int64, error) {
	var count int64
	err := r.db.Model(m).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}
