package ledger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/akashpersetti/hired-eventually/internal/ledger"
)

func newRouter(svc *ledger.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	ledger.NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestListApplications(t *testing.T) {
	svc := ledger.NewService(ledger.NewMemoryStore())
	if _, err := svc.Append(context.Background(), ledger.Entry{Company: "Acme Corp", Role: "Backend Engineer"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Applications []ledger.Record `json:"applications"`
		Choices      []string        `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Applications) != 1 || len(payload.Choices) != 1 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Choices[0] != "1. Acme Corp — Backend Engineer" {
		t.Fatalf("unexpected choice label: %q", payload.Choices[0])
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	svc := ledger.NewService(ledger.NewMemoryStore())
	if _, err := svc.Append(context.Background(), ledger.Entry{Company: "Acme Corp"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	router := newRouter(svc)

	body := bytes.NewBufferString(`{"status":"Accepted"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/applications/1/status", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		Message string `json:"message"`
		Row     int    `json:"row"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Row != 1 || payload.Status != "Accepted" || payload.Message == "" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	records, _ := svc.List(context.Background())
	if records[0].Status != ledger.StatusAccepted {
		t.Fatalf("status not persisted: %q", records[0].Status)
	}
}

func TestUpdateStatusEndpointErrors(t *testing.T) {
	svc := ledger.NewService(ledger.NewMemoryStore())
	router := newRouter(svc)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{name: "unknown row", path: "/api/applications/999/status", body: `{"status":"Accepted"}`, want: http.StatusNotFound},
		{name: "bad row", path: "/api/applications/zero/status", body: `{"status":"Accepted"}`, want: http.StatusBadRequest},
		{name: "bad status", path: "/api/applications/1/status", body: `{"status":"Ghosted"}`, want: http.StatusBadRequest},
		{name: "bad body", path: "/api/applications/1/status", body: `{`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, resp.Code, resp.Body.String())
			}
		})
	}
}
