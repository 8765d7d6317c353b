package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testKey = "s3cret-Key"

// gatedEngine mounts the gate in front of a handler that counts how often it runs.
func gatedEngine(apiKey string, hits *int) *gin.Engine {
	r := gin.New()
	r.Use(APIKeyAuth(apiKey, zerolog.Nop()))
	r.NoRoute(func(c *gin.Context) {
		*hits++
		c.String(http.StatusOK, "ok")
	})
	return r
}

func doRequest(r http.Handler, path string, key *string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if key != nil {
		req.Header.Set(HeaderAPIKey, *key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestAPIKeyAuth(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name       string
		configured string
		path       string
		key        *string
		wantStatus int
		wantCode   response.ErrCode
		wantHits   int
	}{
		{"missing header", testKey, "/Chat", nil, http.StatusUnauthorized, response.ErrAPIKeyRequired, 0},
		{"empty header value is a mismatch", testKey, "/Chat", str(""), http.StatusUnauthorized, response.ErrAPIKeyInvalid, 0},
		{"one char off", testKey, "/Chat", str("s3cret-Kez"), http.StatusUnauthorized, response.ErrAPIKeyInvalid, 0},
		{"case differs", testKey, "/Chat", str("s3cret-key"), http.StatusUnauthorized, response.ErrAPIKeyInvalid, 0},
		{"padded value", testKey, "/Chat", str(" s3cret-Key"), http.StatusUnauthorized, response.ErrAPIKeyInvalid, 0},
		{"exact match", testKey, "/Chat", str(testKey), http.StatusOK, "", 1},
		{"not configured", "", "/Chat", str("anything"), http.StatusInternalServerError, response.ErrMisconfigured, 0},
		{"not configured and missing header", "", "/Status", nil, http.StatusUnauthorized, response.ErrAPIKeyRequired, 0},
		{"swagger bypass", testKey, "/swagger/index.html", nil, http.StatusOK, "", 1},
		{"swagger bypass any case", "", "/Swagger/v1/doc", nil, http.StatusOK, "", 1},
		{"index bypass", testKey, "/index.html", nil, http.StatusOK, "", 1},
		{"static asset bypass", testKey, "/assets/app.js", nil, http.StatusOK, "", 1},
		{"json asset bypass", testKey, "/v1/openapi.json", nil, http.StatusOK, "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := 0
			w := doRequest(gatedEngine(tt.configured, &hits), tt.path, tt.key)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if hits != tt.wantHits {
				t.Errorf("handler ran %d times, want %d", hits, tt.wantHits)
			}
			if tt.wantCode != "" {
				body := decodeError(t, w)
				if body.Code != tt.wantCode {
					t.Errorf("code = %s, want %s", body.Code, tt.wantCode)
				}
				if body.Message != response.GetMessage(tt.wantCode) {
					t.Errorf("message = %q", body.Message)
				}
			}
		})
	}
}

func TestAPIKeyAuth_MissingMessage(t *testing.T) {
	hits := 0
	w := doRequest(gatedEngine(testKey, &hits), "/GenerateTimePlanner", nil)
	body := decodeError(t, w)
	if body.Message != "API Key is required. Include 'X-API-Key' header in your request." {
		t.Errorf("message = %q", body.Message)
	}
}

func TestIsPublicPath(t *testing.T) {
	cases := map[string]bool{
		"/swagger":             true,
		"/swagger/ui":          true,
		"/SWAGGER/x":           true,
		"/swaggerish":          false,
		"/index.html":          true,
		"/site.css":            true,
		"/site.CSS":            false,
		"/Chat":                false,
		"/AnalyzeCourse/1":     false,
		"/api/courses":         false,
		"/api/courses/1.json":  true,
		"/GenerateTimePlanner": false,
	}
	for path, want := range cases {
		if got := IsPublicPath(path); got != want {
			t.Errorf("IsPublicPath(%q) = %v, want %v", path, got, want)
		}
	}
}
