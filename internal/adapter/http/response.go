package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

// errorResponse is the JSON body of every non-2xx reply.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation_error", Message: msg}, h.logger)
}

// fail maps use case errors onto HTTP replies. Known conditions are
// reported to the client; anything else is logged and hidden behind a
// generic message.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNoData):
		msg := "No data available"
		if strings.HasPrefix(op, "export") {
			msg = "No data to export"
		}
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no_data", Message: msg}, h.logger)
	case errors.Is(err, port.ErrInvalidQuery), errors.Is(err, domain.ErrUnsupportedFormat):
		h.badRequest(w, err.Error())
	default:
		h.logger.Error(op+" error",
			slog.Any("error", err),
			slog.String("path", r.URL.Path))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: op + " failed"}, h.logger)
	}
}
