package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"underwrite/adapters/memory"
	"underwrite/app"
	"underwrite/domain/catalog"
	"underwrite/internal"
)

func newTestApp(t *testing.T) (*App, *app.SessionService) {
	t.Helper()
	logger := internal.NewLogger(internal.LogLevelError)
	sessions := app.NewSessionService(memory.NewSessionRepository(), logger)
	a, err := NewApp(sessions, Config{Port: "8081"}, logger)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return a, sessions
}

func get(t *testing.T, a *App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	return rec
}

func TestIndexListsSessions(t *testing.T) {
	a, sessions := newTestApp(t)
	ctx := context.Background()

	session, err := sessions.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	rec := get(t, a, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), session.ID.String()) {
		t.Error("session book does not list the session")
	}
	if !strings.Contains(rec.Body.String(), "OPEN") {
		t.Error("session book does not show the open status")
	}
}

func TestSessionDetail(t *testing.T) {
	a, sessions := newTestApp(t)
	ctx := context.Background()

	session, err := sessions.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := sessions.SubmitAnswer(ctx, session.ID, catalog.Sex, []byte(`{"sex":"male"}`)); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	rec := get(t, a, "/sessions/"+session.ID.String())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Underwriting Report") {
		t.Error("detail page missing rendered report")
	}
	if !strings.Contains(body, "Next: q1") {
		t.Error("detail page missing next question")
	}
}

func TestSessionDetailErrors(t *testing.T) {
	a, _ := newTestApp(t)

	if rec := get(t, a, "/sessions/"+uuid.NewString()); rec.Code != http.StatusNotFound {
		t.Errorf("unknown session: expected 404, got %d", rec.Code)
	}
	if rec := get(t, a, "/sessions/not-a-uuid"); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id: expected 400, got %d", rec.Code)
	}
}

func TestRecomputeRedirects(t *testing.T) {
	a, sessions := newTestApp(t)

	session, err := sessions.StartSession(context.Background())
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+session.ID.String()+"/recompute", nil)
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/sessions/"+session.ID.String() {
		t.Errorf("redirect location = %s", loc)
	}
}

func TestAnalyticsJSON(t *testing.T) {
	a, sessions := newTestApp(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := sessions.StartSession(ctx); err != nil {
			t.Fatalf("StartSession: %v", err)
		}
	}

	rec := get(t, a, "/api/analytics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var report struct {
		Sessions int `json:"sessions"`
		Open     int `json:"open"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Sessions != 2 || report.Open != 2 {
		t.Errorf("report = %+v, want 2 open sessions", report)
	}
}

func TestAnalyticsPageRenders(t *testing.T) {
	a, sessions := newTestApp(t)

	if _, err := sessions.StartSession(context.Background()); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	rec := get(t, a, "/analytics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Portfolio Analytics") {
		t.Error("analytics page missing heading")
	}
}

func TestSessionReportDownload(t *testing.T) {
	a, sessions := newTestApp(t)

	session, err := sessions.StartSession(context.Background())
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	rec := get(t, a, "/sessions/"+session.ID.String()+"/report.md")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("content type = %s", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "# Underwriting Report") {
		t.Error("report missing markdown heading")
	}
}

func TestExcelExport(t *testing.T) {
	a, sessions := newTestApp(t)

	if _, err := sessions.StartSession(context.Background()); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	rec := get(t, a, "/export/sessions.xlsx")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %s", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}
