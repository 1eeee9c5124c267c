package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/testutil"
)

func TestIncrementUpsertsSingleRowPerDay(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewStatisticRepo(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)

	require.NoError(t, repo.IncrementVisit(company.ID))
	require.NoError(t, repo.IncrementVisit(company.ID))
	require.NoError(t, repo.IncrementClick(company.ID, "phone_clicks"))
	require.NoError(t, repo.IncrementClick(company.ID, "facebook_clicks"))

	var rows []model.Statistic
	require.NoError(t, db.Where("company_id = ?", company.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Visits)
	assert.Equal(t, 1, rows[0].PhoneClicks)
	assert.Equal(t, 1, rows[0].FacebookClicks)
	assert.Equal(t, time.Now().Format("2006-01-02"), rows[0].Date)
}

func TestIncrementRejectsUnknownColumn(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewStatisticRepo(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)

	assert.Error(t, repo.IncrementClick(company.ID, "visits; DROP TABLE statistics"))
}

func TestRangeOrdersByDate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewStatisticRepo(db)

	user := testutil.CreateUser(t, db)
	company := testutil.CreateCompany(t, db, user)

	require.NoError(t, db.Create(&model.Statistic{CompanyID: company.ID, Date: "2026-08-02", Visits: 2}).Error)
	require.NoError(t, db.Create(&model.Statistic{CompanyID: company.ID, Date: "2026-08-01", Visits: 1}).Error)
	require.NoError(t, db.Create(&model.Statistic{CompanyID: company.ID, Date: "2026-08-10", Visits: 3}).Error)

	rows, err := repo.Range(company.ID, "2026-08-01", "2026-08-05")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-08-01", rows[0].Date)
	assert.Equal(t, "2026-08-02", rows[1].Date)
}
