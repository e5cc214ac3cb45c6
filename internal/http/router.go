package http

import (
	"net/http"

	"nexus-exporter/internal/exporters"
	"nexus-exporter/internal/shared/loggers"
	"nexus-exporter/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router. The business export
// lives at /metrics; the service's own operational metrics are served
// separately at /internal/metrics.
func NewRouter(exportService exporters.ExportService, shellRunner exporters.ShellRunner, defaultWindow string, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	exportMetricsHandler := NewExportMetricsHandler(exportService, shellRunner, defaultWindow)

	// Routes
	router.Get("/", rootHandler)
	router.Get("/metrics", errorHandlingAdapter(exportMetricsHandler))
	router.Get("/internal/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("Nexus Metrics Exporter"))
}
