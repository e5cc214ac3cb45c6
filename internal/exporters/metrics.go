package exporters

import (
	"nexus-exporter/internal/shared/metrics"
)

var (
	metricExportsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "exports_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricExportDuration = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)

	metricFilesScannedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScan,
			Name:      "files_scanned_total",
		},
	)

	// metricFileErrorsTotal counts files that failed mid-scan or on open;
	// the aggregation itself continues past them.
	metricFileErrorsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScan,
			Name:      "file_errors_total",
		},
	)

	metricLinesAggregatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScan,
			Name:      "lines_aggregated_total",
		},
	)

	metricShellRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubShell,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
