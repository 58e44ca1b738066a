package httpadapter

import "net/http"

// handleOverview returns the KPI cards, chart series and raw metrics of
// the current dashboard as JSON.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Overview(r.Context())
	if err != nil {
		h.fail(w, r, "overview", err)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}
