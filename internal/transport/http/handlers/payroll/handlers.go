package payrollhandler

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sitepay/internal/domain/payroll"
	"sitepay/internal/platform/metrics"
	"sitepay/internal/transport/http/api"
	"sitepay/internal/transport/http/middleware"
	"sitepay/internal/transport/http/shared"
)

// Handler serves the two payroll reports and their exports. The reporting
// window and laborer level default from configuration and may be overridden
// per request via query parameters.
type Handler struct {
	Service      *payroll.Service
	Metrics      *metrics.Collector
	DefaultLevel string
	DefaultStart time.Time
	DefaultEnd   time.Time
}

func NewHandler(service *payroll.Service, collector *metrics.Collector, level string, start, end time.Time) *Handler {
	return &Handler{
		Service:      service,
		Metrics:      collector,
		DefaultLevel: level,
		DefaultStart: start,
		DefaultEnd:   end,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/general-laborers", h.handleLevelReport)
		r.Get("/general-laborers/export/csv", h.handleLevelReportCSV)
		r.Get("/general-laborers/export/pdf", h.handleLevelReportPDF)
	})
	r.Route("/reports", func(r chi.Router) {
		r.Get("/subcity-payments", h.handleSubCityReport)
	})
}

// window resolves the reporting period for a request, preferring query
// overrides over the configured defaults.
func (h *Handler) window(r *http.Request) (time.Time, time.Time, error) {
	start, end := h.DefaultStart, h.DefaultEnd

	if raw := r.URL.Query().Get("startDate"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid startDate %q", raw)
		}
		start = parsed
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid endDate %q", raw)
		}
		end = parsed
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate before startDate")
	}
	return start, end, nil
}

func (h *Handler) level(r *http.Request) string {
	if level := r.URL.Query().Get("level"); level != "" {
		return level
	}
	return h.DefaultLevel
}

func (h *Handler) handleLevelReport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	start, end, err := h.window(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_window", err.Error(), reqID)
		return
	}

	rows, err := h.Service.LevelReport(r.Context(), h.level(r), start, end)
	if err != nil {
		log.Printf("level report failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "payroll_report_failed", "failed to retrieve general laborer payroll", reqID)
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordReport()
	}
	message := fmt.Sprintf("General Laborer Payroll for %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	api.Success(w, message, rows, reqID)
}

func (h *Handler) handleLevelReportCSV(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	start, end, err := h.window(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_window", err.Error(), reqID)
		return
	}

	rows, err := h.Service.LevelReport(r.Context(), h.level(r), start, end)
	if err != nil {
		log.Printf("level report csv failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "payroll_export_failed", "failed to export payroll", reqID)
		return
	}

	var buf bytes.Buffer
	if err := payroll.WriteLevelReportCSV(&buf, rows); err != nil {
		log.Printf("level report csv encode failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "payroll_export_failed", "failed to export payroll", reqID)
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordReport()
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payroll_%s_%s.csv", start.Format("2006-01-02"), end.Format("2006-01-02")))
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleLevelReportPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	start, end, err := h.window(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_window", err.Error(), reqID)
		return
	}

	rows, err := h.Service.LevelReport(r.Context(), h.level(r), start, end)
	if err != nil {
		log.Printf("level report pdf failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "payroll_export_failed", "failed to export payroll", reqID)
		return
	}

	var buf bytes.Buffer
	if err := payroll.WriteLevelReportPDF(&buf, "Payroll Report", start, end, rows); err != nil {
		log.Printf("level report pdf render failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "payroll_export_failed", "failed to export payroll", reqID)
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordReport()
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payroll_%s_%s.pdf", start.Format("2006-01-02"), end.Format("2006-01-02")))
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleSubCityReport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	start, end, err := h.window(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_window", err.Error(), reqID)
		return
	}

	report, err := h.Service.SubCityReport(r.Context(), start, end)
	if err != nil {
		log.Printf("subcity report failed: %v", err)
		api.Fail(w, http.StatusInternalServerError, "subcity_report_failed", "failed to generate SubCity payments report", reqID)
		return
	}

	if h.Metrics != nil {
		h.Metrics.RecordReport()
	}
	message := fmt.Sprintf("Employee Payments by SubCity Report for %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	api.Success(w, message, report, reqID)
}
