package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type fakeLister struct {
	got audit.Query
}

func (f *fakeLister) List(_ context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	f.got = q
	return []models.AuditLog{{ID: 1, Action: "appointment_created"}}, 1, nil
}

func TestAuditLogsFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tz := timezone.NewNormalizer(timezone.DefaultTimezone)
	lister := &fakeLister{}

	r := gin.New()
	r.GET("/api/audit-logs", NewAuditLogsHandler(lister, tz).List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/api/audit-logs?action=appointment_created&entity_id=7&from=2025-03-01&to=2025-03-31&limit=500", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if lister.got.Action != "appointment_created" || lister.got.EntityID == nil || *lister.got.EntityID != 7 {
		t.Fatalf("filters not forwarded: %+v", lister.got)
	}
	if lister.got.From == nil || tz.FormatCivilDate(*lister.got.From) != "2025-03-01" {
		t.Fatalf("from not parsed")
	}
	if lister.got.To == nil || tz.FormatCivilDate(*lister.got.To) != "2025-03-31" {
		t.Fatalf("to must be the end of the civil day")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/audit-logs?from=03/01/2025", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid date must be rejected, got %d", w.Code)
	}
}
