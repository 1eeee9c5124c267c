package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/config"
	"github.com/moqawil/moqawil_server/internal/model"
	"github.com/moqawil/moqawil_server/internal/pkg/email"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/repository"
	"github.com/moqawil/moqawil_server/internal/service"
	"github.com/moqawil/moqawil_server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter(db *gorm.DB) *gin.Engine {
	cfg := &config.Config{
		JWT:          config.JWTConfig{Secret: "handler-test-secret", ExpireHours: 1},
		Subscription: config.SubscriptionConfig{Plans: config.DefaultPlans()},
	}
	authSvc := service.NewAuthService(db, cfg,
		repository.NewUserRepo(db),
		repository.NewCompanyRepo(db),
		email.NewService(&cfg.Email))
	h := NewAuthHandler(authSvc)

	r := gin.New()
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := authRouter(db)

	w := postJSON(t, r, "/api/v1/auth/register", gin.H{
		"email":        "new@example.com",
		"password":     "password123",
		"name":         "مدير",
		"company_name": "شركة جديدة",
		"city":         "طرابلس",
		"plan":         model.PlanBasic,
		"duration":     model.DurationMonthly,
		"codes":        []string{"1111222233334444"},
	})

	resp := testutil.ParseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)

	var user model.User
	require.NoError(t, db.Where("email = ?", "new@example.com").First(&user).Error)

	var payment model.Payment
	require.NoError(t, db.First(&payment).Error)
	assert.Equal(t, model.PaymentPending, payment.Status)
}

func TestRegisterEndpointValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := authRouter(db)

	// Short password fails binding before the service runs.
	w := postJSON(t, r, "/api/v1/auth/register", gin.H{
		"email":        "new@example.com",
		"password":     "short",
		"name":         "مدير",
		"company_name": "شركة",
		"plan":         model.PlanBasic,
		"codes":        []string{"1"},
	})
	assert.Equal(t, response.CodeParamError, testutil.ParseResponse(t, w).Code)

	// Missing codes.
	w = postJSON(t, r, "/api/v1/auth/register", gin.H{
		"email":        "new@example.com",
		"password":     "password123",
		"name":         "مدير",
		"company_name": "شركة",
		"plan":         model.PlanBasic,
	})
	assert.Equal(t, response.CodeParamError, testutil.ParseResponse(t, w).Code)
}

func TestLoginEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := authRouter(db)

	user := testutil.CreateUser(t, db, testutil.WithEmail("who@example.com"))
	testutil.CreateCompany(t, db, user)

	w := postJSON(t, r, "/api/v1/auth/login", gin.H{
		"email":    "who@example.com",
		"password": "password123",
	})

	resp := testutil.ParseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := authRouter(db)

	testutil.CreateUser(t, db, testutil.WithEmail("who@example.com"))

	w := postJSON(t, r, "/api/v1/auth/login", gin.H{
		"email":    "who@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, response.CodeAuthFailed, testutil.ParseResponse(t, w).Code)
}
