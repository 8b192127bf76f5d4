package api

import (
	"net/http"

	"go-sales-dashboard/internal/analytics"
	"go-sales-dashboard/internal/api/handler"
	"go-sales-dashboard/pkg/router"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RegisterRoutes mounts every dashboard endpoint. staticDir is served under
// /static/ so the chart paths in responses can be fetched.
func RegisterRoutes(r *router.Router, h *handler.Handler, staticDir string) {
	r.GET("/", h.Index)
	r.GET("/get_data", h.GetData)
	r.GET("/general_info", h.GeneralInfo)
	r.GET("/remove_missing", h.RemoveMissing)
	r.GET("/reset_data", h.ResetData)

	for _, spec := range analytics.Catalog {
		r.GET("/"+spec.Name, h.Analysis(spec))
	}

	r.Handle(http.MethodGet, "/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	r.Handle(http.MethodGet, "/swagger/*", httpSwagger.WrapHandler)
	r.Handle(http.MethodGet, "/metrics", promhttp.Handler())
}
