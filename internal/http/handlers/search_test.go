package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newSearchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/search", Handler{}.QuickSearch)
	return r
}

func postSearch(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuickSearchMissingFields(t *testing.T) {
	r := newSearchRouter()

	cases := []struct {
		name string
		body string
	}{
		{"missing mode", `{"from":"Delhi","to":"Mumbai"}`},
		{"missing from", `{"mode":"train","to":"Mumbai"}`},
		{"missing to", `{"mode":"train","from":"Delhi"}`},
		{"empty body", `{}`},
		{"malformed json", `{`},
	}
	for _, tc := range cases {
		w := postSearch(r, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: bad response body: %v", tc.name, err)
		}
		if resp["error"] != "Missing required fields: mode, from, to" {
			t.Fatalf("%s: error = %q", tc.name, resp["error"])
		}
	}
}

func TestQuickSearchHappyPath(t *testing.T) {
	r := newSearchRouter()

	w := postSearch(r, `{"mode":"train","from":"Delhi","to":"Mumbai"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Success bool     `json:"success"`
		Results []string `json:"results"`
		Query   struct {
			Mode string `json:"mode"`
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"query"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success {
		t.Fatalf("success = false")
	}
	if len(resp.Results) != 3 {
		t.Fatalf("results = %d entries, want 3", len(resp.Results))
	}
	for _, line := range resp.Results {
		if !strings.Contains(line, "Delhi") || !strings.Contains(line, "Mumbai") {
			t.Fatalf("result %q does not echo the route", line)
		}
	}
	if resp.Query.Mode != "train" || resp.Query.From != "Delhi" || resp.Query.To != "Mumbai" {
		t.Fatalf("query echo = %+v", resp.Query)
	}
}

func TestQuickSearchUnknownMode(t *testing.T) {
	r := newSearchRouter()

	w := postSearch(r, `{"mode":"boat","from":"Delhi","to":"Mumbai"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Success bool     `json:"success"`
		Results []string `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success || len(resp.Results) != 0 {
		t.Fatalf("unknown mode: success=%v results=%d, want success with 0 results", resp.Success, len(resp.Results))
	}
}
