package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	handler(c)
	return w
}

func parse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, gin.H{"x": 1})
	})

	resp := parse(t, w)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, CodeSuccess, resp.Code)
	assert.Equal(t, "success", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestError_DefaultMessage(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, CodeQuotaExceeded, "")
	})

	resp := parse(t, w)
	assert.Equal(t, CodeQuotaExceeded, resp.Code)
	assert.Equal(t, codeMessages[CodeQuotaExceeded], resp.Message)
}

func TestError_CustomMessage(t *testing.T) {
	w := record(func(c *gin.Context) {
		ParamError(c, "custom")
	})

	resp := parse(t, w)
	assert.Equal(t, CodeParamError, resp.Code)
	assert.Equal(t, "custom", resp.Message)
}

func TestGuardErrors(t *testing.T) {
	w := record(func(c *gin.Context) {
		BannedError(c)
	})
	assert.Equal(t, CodeAccountBanned, parse(t, w).Code)

	w = record(func(c *gin.Context) {
		PaymentPendingError(c)
	})
	assert.Equal(t, CodePaymentPending, parse(t, w).Code)
}

func TestSuccessPage(t *testing.T) {
	w := record(func(c *gin.Context) {
		SuccessPage(c, 42, 2, 10, []string{"a"})
	})

	resp := parse(t, w)
	assert.Equal(t, CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(42), data["total"])
	assert.Equal(t, float64(2), data["page"])
}
