package handler

import (
	"net/http"
	"time"

	"go-sales-dashboard/internal/analytics"
	"go-sales-dashboard/internal/model"
)

// Analysis builds the handler for one catalog entry: compute the aggregate
// over the working snapshot, draw its chart, and answer with both.
// @Summary Run a dashboard analysis
// @Description Computes the aggregate named by the path over the working table and writes its chart under the graph directory.
// @Description The body holds the aggregate under an endpoint-specific key (e.g. product_counts, top_cities) plus "graph", the written PNG path.
// @Description popular_products also returns most_popular_product, count and total_unique_products.
// @Tags analysis
// @Produce json
// @Success 200 {object} map[string]interface{} "Aggregate and chart path"
// @Failure 422 {object} ErrorResponse "Required column missing, not numeric, or nothing to plot"
// @Failure 500 {object} ErrorResponse "Chart could not be written"
// @Router /missing_data [get]
// @Router /popular_products [get]
// @Router /city_sales [get]
// @Router /payment_distribution [get]
// @Router /discount_analysis [get]
// @Router /customer_category_analysis [get]
// @Router /season_sales [get]
// @Router /promotion_analysis [get]
func (h *Handler) Analysis(spec model.AnalysisSpec) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		result, err := analytics.Compute(h.data.Working(), spec)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		graph, err := h.charts.Render(r.Context(), result.Chart(), spec.ChartFile())
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		h.log.Debug().
			Str("analysis", spec.Name).
			Int("rows", result.RowCount).
			Int("buckets", len(result.Aggregate)).
			Dur("took", time.Since(start)).
			Msg("analysis served")
		writeJSON(w, http.StatusOK, analysisResponse(result, graph))
	}
}

func analysisResponse(result *model.AnalysisResult, graph string) map[string]interface{} {
	resp := make(map[string]interface{}, len(result.Extras)+2)
	for k, v := range result.Extras {
		resp[k] = v
	}
	resp[result.Spec.ResultKey] = result.Aggregate
	resp["graph"] = graph
	return resp
}
