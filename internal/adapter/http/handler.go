package httpadapter

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-insights/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the dashboard use case and a logger for structured
// logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.DashboardUseCase
	logger *slog.Logger
	router chi.Router
	now    func() time.Time

	// exporting counts downloads being rendered or written.
	exporting atomic.Int64
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, now: time.Now}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/overview", h.handleOverview)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/export", h.handleExportCampaigns)
		r.Get("/reports/analytics", h.handleExportReport)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// InFlightExports reports how many exports are currently being served.
func (h *Handler) InFlightExports() int64 {
	return h.exporting.Load()
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"exporting": h.exporting.Load(),
	}, h.logger)
}
