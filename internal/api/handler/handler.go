package handler

import (
	"context"
	"errors"
	"net/http"

	"go-sales-dashboard/internal/analytics"
	"go-sales-dashboard/internal/chart"
	"go-sales-dashboard/internal/logging"
	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/internal/store"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// ChartRenderer writes a figure to disk and returns its path
type ChartRenderer interface {
	Render(ctx context.Context, spec model.ChartSpec, filename string) (string, error)
}

// Handler serves the dashboard endpoints over one dataset
type Handler struct {
	data   *store.Dataset
	charts ChartRenderer
	log    zerolog.Logger
}

func New(data *store.Dataset, charts ChartRenderer) *Handler {
	return &Handler{
		data:   data,
		charts: charts,
		log:    logging.Component("handler"),
	}
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"'Product' column not found in dataset"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to encode response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeError maps err to a status: problems with the data or the request
// are 422, anything else is a server fault.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	ev := h.log.Warn()
	if status >= http.StatusInternalServerError {
		ev = h.log.Error()
	}
	ev.Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request failed")
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case analytics.IsInputError(err), errors.Is(err, chart.ErrNothingToDraw):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
