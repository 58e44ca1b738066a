package httpadapter

import "net/http"

// handleListCampaigns returns one page of the campaign table. Invalid
// parameters result in HTTP 400. A page past the end is not an error; it
// comes back with no rows and the real page count.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q, err := parseCampaignQuery(r.URL.Query(), h.now())
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}
	page, err := h.svc.ListCampaigns(r.Context(), q)
	if err != nil {
		h.fail(w, r, "list campaigns", err)
		return
	}
	writeJSON(w, http.StatusOK, page, h.logger)
}
