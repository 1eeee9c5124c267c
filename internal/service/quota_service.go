package service

import (
	"errors"

	"github.com/moqawil/moqawil_server/config"
	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/repository"
)

var ErrQuotaExceeded = errors.New("plan quota exceeded")

// ContentKind selects which per-plan ceiling applies.
type ContentKind string

const (
	KindProject ContentKind = "project"
	KindService ContentKind = "service"
	KindTeam    ContentKind = "team"
	KindWork    ContentKind = "work"
)

// QuotaService enforces per-plan content ceilings. Counting happens
// server side at create time so a stale client cannot overshoot.
type QuotaService struct {
	plans       map[string]config.PlanLevel
	contentRepo *repository.ContentRepo
	subRepo     *repository.SubscriptionRepo
}

func NewQuotaService(cfg *config.Config, contentRepo *repository.ContentRepo, subRepo *repository.SubscriptionRepo) *QuotaService {
	return &QuotaService{
		plans:       cfg.Subscription.Plans,
		contentRepo: contentRepo,
		subRepo:     subRepo,
	}
}

// Limits resolves the plan table row for a company. Companies without a
// usable current subscription fall back to basic ceilings.
func (s *QuotaService) Limits(company *model.Company) *dto.PlanLimits {
	plan := model.PlanBasic
	if company.CurrentSubscriptionID != nil {
		if sub, err := s.subRepo.GetByID(*company.CurrentSubscriptionID); err == nil && sub.Status == model.SubscriptionActive {
			plan = sub.Plan
		}
	}

	level, ok := s.plans[plan]
	if !ok {
		level = s.plans[model.PlanBasic]
	}

	return &dto.PlanLimits{
		Plan:     plan,
		Projects: level.MaxProjects,
		Services: level.MaxServices,
		Team:     level.MaxTeam,
		Works:    level.MaxWorks,
	}
}

// CheckCanAdd returns ErrQuotaExceeded when one more item of kind would
// cross the company's plan ceiling.
func (s *QuotaService) CheckCanAdd(company *model.Company, kind ContentKind) error {
	limits := s.Limits(company)

	var limit int
	var count int64
	var err error

	switch kind {
	case KindProject:
		limit = limits.Projects
		count, err = s.contentRepo.CountProjects(company.ID)
	case KindService:
		limit = limits.Services
		count, err = s.contentRepo.CountServices(company.ID)
	case KindTeam:
		limit = limits.Team
		count, err = s.contentRepo.CountTeamMembers(company.ID)
	case KindWork:
		limit = limits.Works
		count, err = s.contentRepo.CountWorks(company.ID)
	default:
		return errors.New("unknown content kind")
	}
	if err != nil {
		return err
	}

	if count >= int64(limit) {
		return ErrQuotaExceeded
	}
	return nil
}
