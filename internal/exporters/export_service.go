package exporters

import (
	"context"
	"time"

	"nexus-exporter/internal/models"
	"nexus-exporter/internal/shared/loggers"
	"nexus-exporter/internal/shared/metrics"
	"nexus-exporter/internal/shared/svcerrors"
)

// baselineWindowHours is always collected alongside the requested window so
// scrapers see a stable 24h total regardless of the window they asked for.
const baselineWindowHours = 24

//go:generate mockgen -source=export_service.go -destination=./mocks/export_service_mock.go -package=mocks
type ExportService interface {
	// Export builds the Prometheus text payload for the requested window
	// string (digits followed by 'h'/'H', e.g. "1h").
	Export(ctx context.Context, window string) ([]byte, error)
}

type exportService struct {
	collector  Collector
	flagLoader FlagLoader
}

func NewExportService(collector Collector, flagLoader FlagLoader) ExportService {
	return &exportService{
		collector:  collector,
		flagLoader: flagLoader,
	}
}

func (s *exportService) Export(ctx context.Context, windowStr string) ([]byte, error) {
	logger := loggers.Ctx(ctx)

	// Fail fast on a malformed window before any scanning begins.
	window, err := models.ParseWindow(windowStr)
	if err != nil {
		return nil, failExport(ErrInvalidWindow(windowStr, err))
	}

	start := time.Now()
	logger.Debug().Str(loggers.FieldWindow, window.String()).Msg("started export")

	flags, err := s.flagLoader.Load()
	if err != nil {
		return nil, failExport(errInternalFlagLoadFailed(err))
	}

	result, err := s.collector.Collect(ctx, window.Hours, flags)
	if err != nil {
		return nil, failExport(errInternalCollectFailed(err))
	}

	// The 24h baseline is the same pure operation with a fixed argument,
	// run unconditionally on its own fresh counters.
	baseline, err := s.collector.Collect(ctx, baselineWindowHours, flags)
	if err != nil {
		return nil, failExport(errInternalCollectFailed(err))
	}

	payload, err := renderExposition(window, result, baseline)
	if err != nil {
		return nil, failExport(errInternalRenderFailed(err))
	}

	metricExportDuration.Observe(time.Since(start).Seconds())
	metricExportsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return payload, nil
}

// failExport counts the failure under its error code before it is returned.
func failExport(svcErr *svcerrors.ServiceError) *svcerrors.ServiceError {
	metricExportsTotal.WithLabelValues(svcErr.Code).Inc()
	return svcErr
}
