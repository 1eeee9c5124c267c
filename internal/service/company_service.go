package service

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/config"
	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/oss"
	"github.com/moqawil/moqawil_server/internal/repository"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrBadImage        = errors.New("unsupported or oversized image")
	ErrUnknownClick    = errors.New("unknown click type")
)

type CompanyService struct {
	db          *gorm.DB
	cfg         *config.Config
	companyRepo *repository.CompanyRepo
	contentRepo *repository.ContentRepo
	subRepo     *repository.SubscriptionRepo
	statRepo    *repository.StatisticRepo
	notifRepo   *repository.NotificationRepo
	ticketRepo  *repository.TicketRepo
	ossClient   *oss.Client
}

func NewCompanyService(
	db *gorm.DB,
	cfg *config.Config,
	companyRepo *repository.CompanyRepo,
	contentRepo *repository.ContentRepo,
	subRepo *repository.SubscriptionRepo,
	statRepo *repository.StatisticRepo,
	notifRepo *repository.NotificationRepo,
	ticketRepo *repository.TicketRepo,
	ossClient *oss.Client,
) *CompanyService {
	return &CompanyService{
		db:          db,
		cfg:         cfg,
		companyRepo: companyRepo,
		contentRepo: contentRepo,
		subRepo:     subRepo,
		statRepo:    statRepo,
		notifRepo:   notifRepo,
		ticketRepo:  ticketRepo,
		ossClient:   ossClient,
	}
}

// UpdateProfile applies the editable profile fields. Moderation flags
// and the subscription pointer are not touchable from here.
func (s *CompanyService) UpdateProfile(companyID int64, req *dto.UpdateProfileRequest) (*model.Company, error) {
	values := map[string]interface{}{
		"company_name": req.CompanyName,
		"city":         req.City,
		"category":     req.Category,
		"description":  req.Description,
		"address":      req.Address,
		"phone1":       req.Phone1,
		"phone2":       req.Phone2,
		"email":        req.Email,
		"facebook_url": req.FacebookURL,
		"whatsapp":     req.Whatsapp,
		"founded_at":   req.FoundedAt,
	}
	if err := s.companyRepo.Updates(companyID, values); err != nil {
		return nil, err
	}
	return s.companyRepo.GetByID(companyID)
}

// UploadLogo validates and stores the logo image, replacing the old
// object if one exists.
func (s *CompanyService) UploadLogo(company *model.Company, data []byte, contentType, filename string) (string, error) {
	if err := s.validateImage(data, contentType); err != nil {
		return "", err
	}

	url, err := s.ossClient.UploadImage("logos", company.ID, data, strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		return "", err
	}

	if company.Logo != "" {
		if err := s.ossClient.Delete(s.ossClient.ExtractObjectKey(company.Logo)); err != nil {
			log.Warn().Err(err).Int64("company_id", company.ID).Msg("failed to delete old logo")
		}
	}

	if err := s.companyRepo.Updates(company.ID, map[string]interface{}{"logo": url}); err != nil {
		return "", err
	}
	return url, nil
}

// UploadImage stores a content image (project, work, team photo,
// gallery) and returns its URL.
func (s *CompanyService) UploadImage(company *model.Company, folder string, data []byte, contentType, filename string) (string, error) {
	if err := s.validateImage(data, contentType); err != nil {
		return "", err
	}
	return s.ossClient.UploadImage(folder, company.ID, data, strings.ToLower(filepath.Ext(filename)))
}

// PublicProfile loads the full public page by slug and counts the
// visit. Banned companies are invisible.
func (s *CompanyService) PublicProfile(slug string) (*dto.PublicProfile, error) {
	company, err := s.companyRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	if company.Banned {
		return nil, ErrCompanyNotFound
	}

	profile := &dto.PublicProfile{Company: company}

	if profile.Projects, err = s.contentRepo.ListProjects(company.ID); err != nil {
		return nil, err
	}
	if profile.Services, err = s.contentRepo.ListServices(company.ID); err != nil {
		return nil, err
	}
	if profile.Team, err = s.contentRepo.ListTeamMembers(company.ID); err != nil {
		return nil, err
	}
	if profile.Works, err = s.contentRepo.ListWorks(company.ID); err != nil {
		return nil, err
	}
	if profile.Gallery, err = s.contentRepo.ListGallery(company.ID); err != nil {
		return nil, err
	}

	if err := s.statRepo.IncrementVisit(company.ID); err != nil {
		log.Warn().Err(err).Int64("company_id", company.ID).Msg("failed to count visit")
	}

	return profile, nil
}

// TrackClick counts a contact click from the public profile.
func (s *CompanyService) TrackClick(slug, clickType string) error {
	company, err := s.companyRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}
	if company.Banned {
		return ErrCompanyNotFound
	}

	var column string
	switch clickType {
	case "phone":
		column = "phone_clicks"
	case "whatsapp":
		column = "whatsapp_clicks"
	case "facebook":
		column = "facebook_clicks"
	default:
		return ErrUnknownClick
	}

	return s.statRepo.IncrementClick(company.ID, column)
}

// ListPublic pages the public directory.
func (s *CompanyService) ListPublic(city, category, keyword string, page, pageSize int) ([]model.Company, int64, error) {
	return s.companyRepo.List(city, category, keyword, false, page, pageSize)
}

// ListAll pages every company for the admin, banned included, with the
// current subscription attached.
func (s *CompanyService) ListAll(city, category, keyword string, page, pageSize int) ([]dto.CompanyListItem, int64, error) {
	companies, total, err := s.companyRepo.List(city, category, keyword, true, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.CompanyListItem, 0, len(companies))
	for i := range companies {
		c := companies[i]
		item := dto.CompanyListItem{Company: &c}
		if c.CurrentSubscriptionID != nil {
			if sub, err := s.subRepo.GetByID(*c.CurrentSubscriptionID); err == nil {
				item.Subscription = sub
			}
		}
		items = append(items, item)
	}

	return items, total, nil
}

// ListUnverified pages the verification queue.
func (s *CompanyService) ListUnverified(page, pageSize int) ([]model.Company, int64, error) {
	return s.companyRepo.ListUnverified(page, pageSize)
}

// Moderate applies verified/restricted/banned flags. Only flags present
// in the request change.
func (s *CompanyService) Moderate(companyID int64, req *dto.ModerationRequest) (*model.Company, error) {
	values := map[string]interface{}{}
	if req.Verified != nil {
		values["verified"] = *req.Verified
	}
	if req.Restricted != nil {
		values["restricted"] = *req.Restricted
	}
	if req.Banned != nil {
		values["banned"] = *req.Banned
	}
	if len(values) == 0 {
		return s.companyRepo.GetByID(companyID)
	}

	if err := s.companyRepo.Updates(companyID, values); err != nil {
		return nil, err
	}
	return s.companyRepo.GetByID(companyID)
}

// Delete removes the company and everything it owns in one
// transaction: content, statistics, notifications, tickets,
// subscriptions, payments, the company row and its user account.
func (s *CompanyService) Delete(companyID int64) error {
	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.contentRepo.DeleteAllByCompany(tx, companyID); err != nil {
			return err
		}
		if err := s.statRepo.DeleteByCompany(tx, companyID); err != nil {
			return err
		}
		if err := s.notifRepo.DeleteByCompany(tx, companyID); err != nil {
			return err
		}
		if err := s.ticketRepo.DeleteByCompany(tx, companyID); err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", companyID).Delete(&model.Subscription{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", companyID).Delete(&model.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Company{}, companyID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, company.UserID).Error
	})
}

func (s *CompanyService) validateImage(data []byte, contentType string) error {
	if int64(len(data)) > s.cfg.Upload.MaxSize {
		return ErrBadImage
	}
	for _, allowed := range s.cfg.Upload.AllowedMIMETypes {
		if contentType == allowed {
			return nil
		}
	}
	return ErrBadImage
}
