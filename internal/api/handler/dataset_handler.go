package handler

import (
	"net/http"

	"go-sales-dashboard/internal/analytics"
	"go-sales-dashboard/internal/store"
)

// GetData returns the head of the working table
// @Summary Preview the working table
// @Description First 10 rows of the working table and its total row count. Missing cells are null.
// @Tags dataset
// @Produce json
// @Success 200 {object} model.DataPreview "Preview"
// @Router /get_data [get]
func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.PreviewOf(h.data.Working()))
}

// GeneralInfo describes the working table
// @Summary Dataset metadata
// @Description Column names, inferred dtypes, row and column counts of the working table
// @Tags dataset
// @Produce json
// @Success 200 {object} model.DatasetInfo "Metadata"
// @Router /general_info [get]
func (h *Handler) GeneralInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.Info(h.data.Working()))
}

// RemoveMissing drops every row with a missing value from the working table
// @Summary Drop rows with missing values
// @Description Replaces the working table with its complete rows and returns the new preview. Calling it again changes nothing.
// @Tags dataset
// @Produce json
// @Success 200 {object} model.DataPreview "Preview after filtering"
// @Failure 500 {object} ErrorResponse "Filtering failed"
// @Router /remove_missing [get]
func (h *Handler) RemoveMissing(w http.ResponseWriter, r *http.Request) {
	df, err := h.data.FilterMissing()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, store.PreviewOf(df))
}

// ResetData restores the working table to the dataset as loaded
// @Summary Restore the original table
// @Description Undoes remove_missing by replacing the working table with the loaded dataset
// @Tags dataset
// @Produce json
// @Success 200 {object} model.DataPreview "Preview after reset"
// @Router /reset_data [get]
func (h *Handler) ResetData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.PreviewOf(h.data.Reset()))
}

// IndexResponse lists what the service exposes
type IndexResponse struct {
	Service   string   `json:"service" example:"sales-dashboard"`
	Source    string   `json:"source" example:"dataset.csv"`
	Endpoints []string `json:"endpoints"`
}

// DatasetRoutes are the table endpoints, in registration order
var DatasetRoutes = []string{"/get_data", "/general_info", "/remove_missing", "/reset_data"}

// Index lists the available endpoints
// @Summary Service index
// @Description Names the dataset source and every dashboard endpoint
// @Tags meta
// @Produce json
// @Success 200 {object} IndexResponse "Index"
// @Router / [get]
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	endpoints := append([]string{}, DatasetRoutes...)
	for _, spec := range analytics.Catalog {
		endpoints = append(endpoints, "/"+spec.Name)
	}
	writeJSON(w, http.StatusOK, IndexResponse{
		Service:   "sales-dashboard",
		Source:    h.data.Source(),
		Endpoints: endpoints,
	})
}
