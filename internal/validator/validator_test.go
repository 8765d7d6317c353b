package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/studyplanner-backend/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
	Setup()
}

func bindBody(t *testing.T, body string, dst interface{}) map[string]string {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return Bind(c, dst)
}

func TestBind_NotBlank(t *testing.T) {
	var req model.CourseRequest
	fields := bindBody(t, `{"name":"   ","creditHours":3}`, &req)
	if fields == nil {
		t.Fatal("blank name should fail validation")
	}
	if got := fields["name"]; got != "name must not be blank" {
		t.Errorf("fields[name] = %q", got)
	}
}

func TestBind_UsesJSONNames(t *testing.T) {
	var req model.SubjectRequest
	fields := bindBody(t, `{"name":"Math","averageTimeInMinutes":0}`, &req)
	if _, ok := fields["averageTimeInMinutes"]; !ok {
		t.Errorf("expected averageTimeInMinutes error, got %v", fields)
	}
}

func TestBind_MalformedJSON(t *testing.T) {
	var req model.ChatRequest
	fields := bindBody(t, `{"message":`, &req)
	if _, ok := fields["detail"]; !ok {
		t.Errorf("expected detail entry, got %v", fields)
	}
}

func TestBind_Valid(t *testing.T) {
	var req model.SchoolRequest
	if fields := bindBody(t, `{"name":"North High","address":"1 Main St"}`, &req); fields != nil {
		t.Errorf("unexpected errors: %v", fields)
	}
	if req.Name != "North High" {
		t.Errorf("Name = %q", req.Name)
	}
}

func TestSummary(t *testing.T) {
	got := Summary(map[string]string{"name": "name is required", "address": "address is required"})
	if got != "address is required; name is required" {
		t.Errorf("Summary = %q", got)
	}
}
