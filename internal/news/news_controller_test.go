package news

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreateNewsBindingErrorListsFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewNewsController(NewNewsRepository(nil))
	r.POST("/news", controller.CreateNews)

	req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(`{"content":"body only"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "Validation failed" {
		t.Errorf("error = %q, want %q", resp.Error, "Validation failed")
	}
	if _, ok := resp.Fields["Title"]; !ok {
		t.Errorf("fields = %v, want an entry for the missing title", resp.Fields)
	}
}
