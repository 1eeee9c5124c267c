package testutil

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/moqawil/moqawil_server/internal/pkg/response"
)

// ParseResponse decodes the unified JSON envelope from a recorded
// response.
func ParseResponse(t *testing.T, w *httptest.ResponseRecorder) *response.Response {
	t.Helper()

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
	return &resp
}
