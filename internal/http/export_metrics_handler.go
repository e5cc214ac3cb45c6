package http

import (
	"net/http"
	"strconv"
	"strings"

	"nexus-exporter/internal/exporters"
	"nexus-exporter/internal/models"
	"nexus-exporter/internal/shared/loggers"
	"nexus-exporter/internal/shared/svcerrors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type exportMetricsHandler struct {
	exportService exporters.ExportService
	shellRunner   exporters.ShellRunner
	defaultWindow string
}

func NewExportMetricsHandler(exportService exporters.ExportService, shellRunner exporters.ShellRunner, defaultWindow string) AppHttpHandler {
	return &exportMetricsHandler{
		exportService: exportService,
		shellRunner:   shellRunner,
		defaultWindow: defaultWindow,
	}
}

// Handle processes GET /metrics requests. Query parameters: window (digits
// followed by 'h'/'H', default from config) and sh (run the legacy shell
// exporter instead of the engine). The window format is enforced here for
// both variants; a malformed window never reaches the engine or the script.
func (h *exportMetricsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	window := strings.TrimSpace(r.URL.Query().Get("window"))
	if window == "" {
		window = h.defaultWindow
	}
	if _, err := models.ParseWindow(window); err != nil {
		return exporters.ErrInvalidWindow(window, err)
	}

	if boolQuery(r, "sh") {
		payload, err := h.shellRunner.Run(r.Context(), window)
		if err != nil {
			return err
		}
		writeExposition(w, payload)
		return nil
	}

	payload, err := h.exportService.Export(r.Context(), window)
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if ok && !svcErr.IsInternalError() {
			// Client-addressable errors go through the error adapter.
			return err
		}

		// Anything that went wrong while building the aggregation is
		// returned as diagnostic text with a 200, not as an HTTP failure.
		// Scrapers keep getting a parseable (if empty) response.
		loggers.Ctx(r.Context()).Error().Err(err).Msg("export failed")
		writeExposition(w, []byte(diagnosticText(err)))
		return nil
	}

	writeExposition(w, payload)
	return nil
}

func writeExposition(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", exporters.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// diagnosticText unwraps a service error to its underlying cause so the
// payload carries the actual failure, not the client-safe stand-in message.
func diagnosticText(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok && svcErr.Cause != nil {
		return svcErr.Cause.Error()
	}
	return err.Error()
}

func boolQuery(r *http.Request, name string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return false
	}
	return value
}
