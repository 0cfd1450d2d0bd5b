package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/api/middleware"
	"github.com/greengirl/dashboard/internal/api/response"
	"github.com/greengirl/dashboard/internal/api/validation"
	"github.com/greengirl/dashboard/internal/export"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/report"
)

// snapshot is every record plus the storage capacities, fetched together.
type snapshot struct {
	materials  []material.WithAuthor
	activities []activity.WithAuthor
	capacities map[material.Type]float64
}

func loadSnapshot(ctx context.Context, ms MaterialStore, as ActivityStore, ls LookupStore) snapshot {
	var s snapshot
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.materials = ms.ListMaterials(ctx)
	}()
	go func() {
		defer wg.Done()
		s.activities = as.ListActivities(ctx)
	}()
	go func() {
		defer wg.Done()
		s.capacities = ls.StorageConfig(ctx)
	}()
	wg.Wait()
	return s
}

// ReportHandler serves the dashboard and the period reports.
type ReportHandler struct {
	materials  MaterialStore
	activities ActivityStore
	lookups    LookupStore
	now        func() time.Time
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(ms MaterialStore, as ActivityStore, ls LookupStore) *ReportHandler {
	return &ReportHandler{materials: ms, activities: as, lookups: ls, now: time.Now}
}

// Dashboard handles GET /dashboard.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	s := loadSnapshot(r.Context(), h.materials, h.activities, h.lookups)
	response.Success(w, http.StatusOK, report.BuildDashboard(s.materials, s.activities, s.capacities), requestID)
}

func (h *ReportHandler) summary(w http.ResponseWriter, r *http.Request, requestID string) (report.Summary, snapshot, bool) {
	p, ok := report.ParsePeriod(r.URL.Query().Get("period"))
	if !ok {
		validationFailed(w, []validation.FieldError{{
			Field:   "period",
			Message: `period must be one of "all", "week", "month", "quarter", "semester", "year"`,
		}}, requestID)
		return report.Summary{}, snapshot{}, false
	}

	s := loadSnapshot(r.Context(), h.materials, h.activities, h.lookups)
	return report.Build(s.materials, s.activities, p, h.now()), s, true
}

// Report handles GET /reports?period=.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sum, _, ok := h.summary(w, r, requestID)
	if !ok {
		return
	}
	response.Success(w, http.StatusOK, sum, requestID)
}

func reportFilename(sum report.Summary, ext string) string {
	return "relatorio_" + string(sum.Period) + "_" + sum.GeneratedAt.Format(dateLayout) + "." + ext
}

// ExportCSV handles GET /reports/export.csv.
func (h *ReportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sum, _, ok := h.summary(w, r, requestID)
	if !ok {
		return
	}

	response.Attachment(w, "text/csv; charset=utf-8", reportFilename(sum, "csv"))
	if err := export.WriteReportCSV(w, sum); err != nil {
		slog.Error("failed to write report csv", "error", err)
	}
}

// ExportPDF handles GET /reports/export.pdf. The document is rendered in
// memory first so a failure can still be reported as JSON.
func (h *ReportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sum, snap, ok := h.summary(w, r, requestID)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteReportPDF(&buf, sum, report.Gauges(snap.materials, snap.capacities)); err != nil {
		slog.Error("failed to render report pdf", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render report", requestID)
		return
	}

	response.Attachment(w, "application/pdf", reportFilename(sum, "pdf"))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to send report pdf", "error", err)
	}
}
