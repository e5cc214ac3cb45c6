package exporters

import (
	"bytes"
	"fmt"

	"nexus-exporter/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// topEndpointCount bounds the by-endpoint breakdown in the exposition.
// All other breakdowns are emitted in full.
const topEndpointCount = 50

// ContentType is the exposition content type served to scrapers.
const ContentType = "text/plain; version=0.0.4"

// renderExposition serializes the requested-window result plus the fixed
// 24h baseline into the Prometheus text exposition format. A fresh registry
// is built per call so concurrent exports never share collector state.
func renderExposition(window models.Window, result, baseline *models.AggregationResult) ([]byte, error) {
	registry := prometheus.NewRegistry()

	total := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "requests_total",
		Help: fmt.Sprintf("Total API requests in last %s", window),
	})
	registry.MustRegister(total)
	total.Add(float64(result.Total))

	total24h := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "requests_total_last_24h",
		Help: "Total API requests in the last 24h",
	})
	registry.MustRegister(total24h)
	total24h.Set(float64(baseline.Total))

	setLabeled := func(name, help, label string, counts map[string]int64) {
		vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, []string{label})
		registry.MustRegister(vec)
		for key, count := range counts {
			vec.WithLabelValues(key).Set(float64(count))
		}
	}

	setLabeled("requests_by_user", fmt.Sprintf("Requests by user in last %s", window), "user", result.ByUser)

	endpoints := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "requests_by_endpoint",
		Help: fmt.Sprintf("Requests by endpoint in last %s (top %d)", window, topEndpointCount),
	}, []string{"endpoint"})
	registry.MustRegister(endpoints)
	for _, entry := range result.TopEndpoints(topEndpointCount) {
		endpoints.WithLabelValues(entry.Endpoint).Set(float64(entry.Count))
	}

	setLabeled("requests_by_repository", fmt.Sprintf("Requests by repository in last %s", window), "repository", result.ByRepo)
	setLabeled("requests_by_service", fmt.Sprintf("Requests by service in last %s", window), "service", result.ByService)
	setLabeled("requests_by_source_ip", fmt.Sprintf("Requests by IP in last %s", window), "ip", result.ByIP)
	setLabeled("requests_by_hour", fmt.Sprintf("Requests by hour in last %s", window), "hour", result.ByHour)
	setLabeled("status_code_total", fmt.Sprintf("Status code distribution in last %s", window), "code", result.ByStatus)
	setLabeled("custom_flag_matches", fmt.Sprintf("Custom flag matches in last %s", window), "flag", result.FlagMatches)
	setLabeled("requests_by_user_agent", fmt.Sprintf("Requests by user agent in last %s", window), "agent", result.ByUserAgent)

	families, err := registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather export metrics: %w", err)
	}

	var buf bytes.Buffer
	encoder := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return nil, fmt.Errorf("failed to encode metric family %q: %w", family.GetName(), err)
		}
	}
	return buf.Bytes(), nil
}
