package httpadapter

import (
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"campaign-insights/internal/core/export"
	"campaign-insights/internal/core/port"
)

// handleExportCampaigns streams the filtered and sorted campaign rows as a
// CSV or PDF download. It accepts the same filters as the listing plus
// `format` (csv by default) and `filename`. Pagination parameters are
// ignored: the export always covers every matching row. An empty result
// yields HTTP 404 with a no_data error and no file.
func (h *Handler) handleExportCampaigns(w http.ResponseWriter, r *http.Request) {
	format := export.FormatCSV
	if v := r.URL.Query().Get("format"); v != "" {
		f, err := export.ParseFormat(v)
		if err != nil {
			h.badRequest(w, err.Error())
			return
		}
		format = f
	}
	q, err := parseCampaignQuery(r.URL.Query(), h.now())
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	h.serveExport(w, r, "export campaigns", func() (*port.ExportFile, error) {
		return h.svc.ExportCampaigns(r.Context(), q, format, r.URL.Query().Get("filename"))
	})
}

// handleExportReport serves the analytics report PDF.
func (h *Handler) handleExportReport(w http.ResponseWriter, r *http.Request) {
	h.serveExport(w, r, "export report", func() (*port.ExportFile, error) {
		return h.svc.ExportReport(r.Context(), r.URL.Query().Get("filename"))
	})
}

// serveExport renders and writes one download. The in-flight counter is
// released on every path out, including write failures and panics.
func (h *Handler) serveExport(w http.ResponseWriter, r *http.Request, op string, render func() (*port.ExportFile, error)) {
	h.exporting.Add(1)
	defer h.exporting.Add(-1)

	id := uuid.NewString()
	start := time.Now()
	logger := h.logger.With(slog.String("export_id", id))

	file, err := render()
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Body)))
	w.Header().Set("X-Export-ID", id)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(file.Body); err != nil {
		logger.Error("export failed", slog.String("file", file.Name), slog.Any("error", err))
		return
	}
	logger.Info("export served",
		slog.String("file", file.Name),
		slog.Int("rows", file.Rows),
		slog.Int("bytes", len(file.Body)),
		slog.Duration("took", time.Since(start)))
}
