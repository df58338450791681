package submissions_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"easyhire-backend/internal/submissions"
)

func newRouter() (*gin.Engine, *submissions.MemoryStore) {
	gin.SetMode(gin.TestMode)
	store := submissions.NewMemoryStore()
	router := gin.New()
	api := router.Group("/api/v1")
	submissions.NewHandler(store).RegisterRoutes(api)
	return router, store
}

func TestCreateAndListSubmissions(t *testing.T) {
	router, _ := newRouter()

	for _, payload := range []string{
		`{"id":"sub-1","name":"Alice","email":"alice@example.com","submitted_at":"2025-03-01T10:00:00Z"}`,
		`{"id":"sub-2","name":"Bob","is_nz_citizen":true}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", bytes.NewReader([]byte(payload)))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/submissions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out struct {
		Success bool                     `json:"success"`
		Data    []submissions.Submission `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success {
		t.Fatalf("expected success")
	}
	if len(out.Data) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(out.Data))
	}
	if out.Data[0].ID != "sub-2" || out.Data[1].ID != "sub-1" {
		t.Fatalf("expected reverse-chronological order, got %s then %s", out.Data[0].ID, out.Data[1].ID)
	}
	if out.Data[0].SubmittedAt == "" {
		t.Fatalf("expected submitted_at to be defaulted")
	}
}

func TestCreateSubmissionRequiresID(t *testing.T) {
	router, _ := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", bytes.NewReader([]byte(`{"name":"No ID"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Success || out.Error == "" {
		t.Fatalf("expected failure payload, got %+v", out)
	}
}

func TestCreateSubmissionRejectsBadBody(t *testing.T) {
	router, _ := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", bytes.NewReader([]byte(`not json`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
