package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/repository"
	"github.com/moqawil/moqawil_server/internal/testutil"
)

func newContentService(db *gorm.DB) *ContentService {
	return NewContentService(repository.NewContentRepo(db), newQuotaService(db))
}

func activeCompany(t *testing.T, db *gorm.DB) *model.Company {
	t.Helper()
	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)
	testutil.CreateActiveSubscription(t, db, company)
	return company
}

func TestCreateProject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newContentService(db)
	company := activeCompany(t, db)

	project, err := svc.CreateProject(company, &dto.ProjectRequest{
		Title:       "برج سكني",
		ProjectType: model.ProjectTypeResidential,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ProjectInProgress, project.ProjectStatus)
	assert.Equal(t, company.ID, project.CompanyID)
}

func TestCreateProjectInvalidType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newContentService(db)
	company := activeCompany(t, db)

	_, err := svc.CreateProject(company, &dto.ProjectRequest{
		Title:       "برج",
		ProjectType: "فضائي",
	})
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestCreateProjectQuota(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newContentService(db)
	company := activeCompany(t, db) // basic: 3 projects

	for i := 0; i < 3; i++ {
		_, err := svc.CreateProject(company, &dto.ProjectRequest{
			Title:       "مشروع",
			ProjectType: model.ProjectTypeCommercial,
		})
		require.NoError(t, err)
	}

	_, err := svc.CreateProject(company, &dto.ProjectRequest{
		Title:       "مشروع زائد",
		ProjectType: model.ProjectTypeCommercial,
	})
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	// Deleting one frees a slot.
	projects, err := svc.ListProjects(company.ID)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteProject(company.ID, projects[0].ID))

	_, err = svc.CreateProject(company, &dto.ProjectRequest{
		Title:       "مشروع بديل",
		ProjectType: model.ProjectTypeCommercial,
	})
	assert.NoError(t, err)
}

func TestUpdateProjectOwnershipScoped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newContentService(db)
	owner := activeCompany(t, db)
	intruder := activeCompany(t, db)

	project, err := svc.CreateProject(owner, &dto.ProjectRequest{
		Title:       "مشروع",
		ProjectType: model.ProjectTypeIndustrial,
	})
	require.NoError(t, err)

	_, err = svc.UpdateProject(intruder.ID, project.ID, &dto.ProjectRequest{
		Title:       "مسروق",
		ProjectType: model.ProjectTypeIndustrial,
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.DeleteProject(intruder.ID, project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Still intact for the owner.
	updated, err := svc.UpdateProject(owner.ID, project.ID, &dto.ProjectRequest{
		Title:         "محدث",
		ProjectType:   model.ProjectTypeIndustrial,
		ProjectStatus: model.ProjectCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, "محدث", updated.Title)
	assert.Equal(t, model.ProjectCompleted, updated.ProjectStatus)
}

func TestCreateWorkInvalidType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newContentService(db)
	company := activeCompany(t, db)

	_, err := svc.CreateWork(company, &dto.WorkRequest{
		Title:    "عمل",
		WorkType: "هدم",
	})
	assert.ErrorIs(t, err, ErrInvalidEnum)

	work, err := svc.CreateWork(company, &dto.WorkRequest{
		Title:    "عمل",
		WorkType: model.WorkTypeFinishing,
	})
	require.NoError(t, err)
	assert.Equal(t, model.WorkTypeFinishing, work.WorkType)
}

func TestTeamMemberQuota(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newContentService(db)
	company := activeCompany(t, db) // basic: 3 team members

	for i := 0; i < 3; i++ {
		_, err := svc.CreateTeamMember(company, &dto.TeamMemberRequest{
			Name:     "مهندس",
			Position: "مهندس موقع",
		})
		require.NoError(t, err)
	}

	_, err := svc.CreateTeamMember(company, &dto.TeamMemberRequest{
		Name:     "زائد",
		Position: "إداري",
	})
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestGalleryNotQuotaLimited(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newContentService(db)
	company := activeCompany(t, db)

	for i := 0; i < 10; i++ {
		_, err := svc.AddGalleryImage(company.ID, "https://cdn.example.com/img.jpg")
		require.NoError(t, err)
	}

	images, err := svc.ListGallery(company.ID)
	require.NoError(t, err)
	assert.Len(t, images, 10)
}
