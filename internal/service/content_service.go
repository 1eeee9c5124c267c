package service

import (
	"errors"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/repository"
)

var ErrInvalidEnum = errors.New("invalid enum value")

// ContentService is the dashboard CRUD behind projects, services, team
// members, works and the gallery. Creates run through the quota check,
// updates and deletes are ownership scoped in the repository.
type ContentService struct {
	contentRepo *repository.ContentRepo
	quotaSvc    *QuotaService
}

func NewContentService(contentRepo *repository.ContentRepo, quotaSvc *QuotaService) *ContentService {
	return &ContentService{contentRepo: contentRepo, quotaSvc: quotaSvc}
}

// Projects

func (s *ContentService) CreateProject(company *model.Company, req *dto.ProjectRequest) (*model.Project, error) {
	if !model.ValidProjectType(req.ProjectType) {
		return nil, ErrInvalidEnum
	}
	status := req.ProjectStatus
	if status == "" {
		status = model.ProjectInProgress
	}
	if !model.ValidProjectStatus(status) {
		return nil, ErrInvalidEnum
	}

	if err := s.quotaSvc.CheckCanAdd(company, KindProject); err != nil {
		return nil, err
	}

	project := &model.Project{
		CompanyID:     company.ID,
		Title:         req.Title,
		Image:         req.Image,
		ProjectType:   req.ProjectType,
		ProjectStatus: status,
	}
	if err := s.contentRepo.CreateProject(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ContentService) ListProjects(companyID int64) ([]model.Project, error) {
	return s.contentRepo.ListProjects(companyID)
}

func (s *ContentService) UpdateProject(companyID, id int64, req *dto.ProjectRequest) (*model.Project, error) {
	if !model.ValidProjectType(req.ProjectType) {
		return nil, ErrInvalidEnum
	}
	if req.ProjectStatus != "" && !model.ValidProjectStatus(req.ProjectStatus) {
		return nil, ErrInvalidEnum
	}

	project, err := s.contentRepo.GetProject(id, companyID)
	if err != nil {
		return nil, err
	}

	project.Title = req.Title
	project.Image = req.Image
	project.ProjectType = req.ProjectType
	if req.ProjectStatus != "" {
		project.ProjectStatus = req.ProjectStatus
	}

	if err := s.contentRepo.UpdateProject(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ContentService) DeleteProject(companyID, id int64) error {
	return s.contentRepo.DeleteProject(id, companyID)
}

// Services

func (s *ContentService) CreateService(company *model.Company, req *dto.ServiceRequest) (*model.Service, error) {
	if err := s.quotaSvc.CheckCanAdd(company, KindService); err != nil {
		return nil, err
	}

	svc := &model.Service{
		CompanyID:   company.ID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.contentRepo.CreateService(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *ContentService) ListServices(companyID int64) ([]model.Service, error) {
	return s.contentRepo.ListServices(companyID)
}

func (s *ContentService) UpdateService(companyID, id int64, req *dto.ServiceRequest) (*model.Service, error) {
	svc, err := s.contentRepo.GetService(id, companyID)
	if err != nil {
		return nil, err
	}

	svc.Title = req.Title
	svc.Description = req.Description
	svc.Price = req.Price

	if err := s.contentRepo.UpdateService(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *ContentService) DeleteService(companyID, id int64) error {
	return s.contentRepo.DeleteService(id, companyID)
}

// Team members

func (s *ContentService) CreateTeamMember(company *model.Company, req *dto.TeamMemberRequest) (*model.TeamMember, error) {
	if err := s.quotaSvc.CheckCanAdd(company, KindTeam); err != nil {
		return nil, err
	}

	member := &model.TeamMember{
		CompanyID: company.ID,
		Name:      req.Name,
		Position:  req.Position,
		Photo:     req.Photo,
	}
	if err := s.contentRepo.CreateTeamMember(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *ContentService) ListTeamMembers(companyID int64) ([]model.TeamMember, error) {
	return s.contentRepo.ListTeamMembers(companyID)
}

func (s *ContentService) UpdateTeamMember(companyID, id int64, req *dto.TeamMemberRequest) (*model.TeamMember, error) {
	member, err := s.contentRepo.GetTeamMember(id, companyID)
	if err != nil {
		return nil, err
	}

	member.Name = req.Name
	member.Position = req.Position
	member.Photo = req.Photo

	if err := s.contentRepo.UpdateTeamMember(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *ContentService) DeleteTeamMember(companyID, id int64) error {
	return s.contentRepo.DeleteTeamMember(id, companyID)
}

// Works

func (s *ContentService) CreateWork(company *model.Company, req *dto.WorkRequest) (*model.Work, error) {
	if !model.ValidWorkType(req.WorkType) {
		return nil, ErrInvalidEnum
	}

	if err := s.quotaSvc.CheckCanAdd(company, KindWork); err != nil {
		return nil, err
	}

	work := &model.Work{
		CompanyID:   company.ID,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		WorkType:    req.WorkType,
	}
	if err := s.contentRepo.CreateWork(work); err != nil {
		return nil, err
	}
	return work, nil
}

func (s *ContentService) ListWorks(companyID int64) ([]model.Work, error) {
	return s.contentRepo.ListWorks(companyID)
}

func (s *ContentService) UpdateWork(companyID, id int64, req *dto.WorkRequest) (*model.Work, error) {
	if !model.ValidWorkType(req.WorkType) {
		return nil, ErrInvalidEnum
	}

	work, err := s.contentRepo.GetWork(id, companyID)
	if err != nil {
		return nil, err
	}

	work.Title = req.Title
	work.Description = req.Description
	work.Image = req.Image
	work.WorkType = req.WorkType

	if err := s.contentRepo.UpdateWork(work); err != nil {
		return nil, err
	}
	return work, nil
}

func (s *ContentService) DeleteWork(companyID, id int64) error {
	return s.contentRepo.DeleteWork(id, companyID)
}

// Gallery. No quota, gallery size is not plan limited.

func (s *ContentService) AddGalleryImage(companyID int64, imageURL string) (*model.GalleryImage, error) {
	img := &model.GalleryImage{CompanyID: companyID, ImageURL: imageURL}
	if err := s.contentRepo.CreateGalleryImage(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *ContentService) ListGallery(companyID int64) ([]model.GalleryImage, error) {
	return s.contentRepo.ListGallery(companyID)
}

func (s *ContentService) DeleteGalleryImage(companyID, id int64) error {
	return s.contentRepo.DeleteGalleryImage(id, companyID)
}
