package exporters

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"nexus-exporter/internal/models"
	"nexus-exporter/internal/shared/loggers"
)

// Collector runs one full scan of the qualifying log files and folds every
// in-window line into a fresh counter set. Each call re-reads the logs from
// disk; nothing is cached or shared between calls, so concurrent callers
// need no locking.
//
//go:generate mockgen -source=collector.go -destination=./mocks/collector_mock.go -package=mocks
type Collector interface {
	Collect(ctx context.Context, windowHours int, flags []string) (*models.AggregationResult, error)
}

type collector struct {
	logDir string
	now    func() time.Time
}

func NewCollector(logDir string) Collector {
	return &collector{logDir: logDir, now: time.Now}
}

// NewCollectorWithClock is for tests that need a fixed reference time.
func NewCollectorWithClock(logDir string, now func() time.Time) Collector {
	return &collector{logDir: logDir, now: now}
}

func (c *collector) Collect(ctx context.Context, windowHours int, flags []string) (*models.AggregationResult, error) {
	logger := loggers.Ctx(ctx)

	now := c.now()
	cutoff := now.Add(-time.Duration(windowHours) * time.Hour)
	result := models.NewAggregationResult()

	for _, path := range candidateFiles(c.logDir, cutoff, now) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := c.scanFile(path, cutoff, flags, result); err != nil {
			// One unreadable archive must not void the whole aggregation;
			// scanning continues with the remaining files.
			logger.Warn().Err(err).Str(loggers.FieldLogFile, path).Msg("failed to scan log file")
			metricFileErrorsTotal.Inc()
		}
	}

	logger.Debug().Msgf("scanned %dh window: %d lines at or after %s", windowHours, result.Total, cutoff.Format(time.RFC3339))
	return result, nil
}

func (c *collector) scanFile(path string, cutoff time.Time, flags []string, result *models.AggregationResult) error {
	scanner, err := openLogScanner(path, cutoff)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Rotation gaps are expected; a missing candidate contributes nothing.
			return nil
		}
		return err
	}
	defer scanner.Close()
	metricFilesScannedTotal.Inc()

	for scanner.Scan() {
		accumulate(scanner.Line(), scanner.Timestamp(), flags, result)
	}
	return scanner.Err()
}

// accumulate folds one in-window line into the counters. Total, ByIP, ByUser,
// ByStatus and ByHour are incremented for every line; the request-derived
// counters only when the quoted request parsed.
func accumulate(line string, ts time.Time, flags []string, result *models.AggregationResult) {
	result.Total++
	metricLinesAggregatedTotal.Inc()

	fields := parseRequestFields(line)
	result.ByIP[fields.SourceIP]++
	result.ByUser[fields.User]++
	result.ByStatus[fields.Status]++
	result.ByHour[fmt.Sprintf("%02d", ts.Hour())]++

	if fields.HasRequest {
		result.ByEndpoint[fields.Path]++
		if fields.Repository != "" {
			result.ByRepo[fields.Repository]++
		}
		if fields.Service != "" {
			result.ByService[fields.Service]++
		}
	}

	if fields.UserAgent != "" {
		result.ByUserAgent[normalizeUserAgent(fields.UserAgent)]++
	}

	for _, flag := range flags {
		if strings.Contains(line, flag) {
			result.FlagMatches[flag]++
		}
	}
}
