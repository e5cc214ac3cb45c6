package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	linesPerBucket = 4000 // Log lines generated per age bucket
)

var (
	// Each bucket places its lines this far in the past, well away from the
	// window boundaries the scenario queries.
	bucketAges = []time.Duration{
		30 * time.Minute,
		6 * time.Hour,
		20 * time.Hour,
		40 * time.Hour,
	}
	users = []string{"alice", "bob", "carol", "dave"}
	paths = []string{
		"/repository/maven-releases/org/example/app/1.0/app-1.0.jar",
		"/repository/npm-proxy/left-pad/-/left-pad-1.3.0.tgz",
		"/service/rest/v1/status",
		"/service/metrics/prometheus",
	}
	sourceIPs = []string{"10.0.0.1", "10.0.0.2", "192.168.1.10", "172.16.0.5"}
	statuses  = []int{200, 200, 200, 404}
)

// ### End - fixed configs

type windowExpectation struct {
	window        string
	expectedTotal int
}

// main runs the e2e scenario: 001_window_aggregation
//
// This scenario tests the end-to-end flow of access log scanning, window
// filtering, and exposition rendering. It generates a deterministic access
// log tree (dated archives, a gzipped archive, and a live request.log), then
// queries the running exporter with widening windows.
//
// What it tests:
//   - Metric export via GET /metrics with the window query parameter
//   - Rotated file selection including gzip archives and the live log
//   - Window cutoff filtering across day boundaries
//   - The unconditional 24h baseline alongside the requested window
//   - Per-user and per-status counters summing to the total
//
// Expected results:
//   - window=1h counts only the 30m bucket (4000 lines)
//   - window=24h counts the 30m, 6h, and 20h buckets (12000 lines)
//   - window=48h counts all four buckets (16000 lines)
//   - requests_total_last_24h reports 12000 in every response
//   - Each window's requests_by_user series sum to its requests_total
//   - status_code_total splits 3:1 between 200 and 404
//
// The exporter must be running with logs.dir pointing at LOG_DIR before the
// scenario starts.
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8000" // Base URL of the running exporter
	logDir := ".tmp/nexus-logs"        // Log directory, must match the exporter's logs.dir
	wantCleanLogDir := true            // If true, clean up the log directory before generating

	// Get project root directory by looking for go.mod file
	// Start from current working directory and walk up until we find go.mod
	projectRoot, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			fmt.Fprintf(os.Stderr, "ERROR: Could not find go.mod file. Please run from project root or set LOG_DIR to absolute path\n")
			os.Exit(1)
		}
		projectRoot = parent
	}

	logPath, err := filepath.Abs(filepath.Join(projectRoot, logDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to resolve log directory path: %v\n", err)
		os.Exit(1)
	}

	if wantCleanLogDir {
		fmt.Printf("Cleaning log directory: %s\n", logPath)
		if err := os.RemoveAll(logPath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean log directory: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_window_aggregation")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("LOG_DIR: %s\n", logPath)
	fmt.Printf("LINES_PER_BUCKET: %d\n", linesPerBucket)
	fmt.Printf("TOTAL_LINES: %d\n", linesPerBucket*len(bucketAges))
	fmt.Println()

	now := time.Now()

	fmt.Println("Generating access log tree...")
	fileLines := generateLogTree(now)
	if err := writeLogTree(logPath, fileLines); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write log tree: %v\n", err)
		os.Exit(1)
	}
	for name, lines := range fileLines {
		fmt.Printf("Wrote %s (%d lines)\n", name, len(lines))
	}
	fmt.Println()

	expectations := []windowExpectation{
		{window: "1h", expectedTotal: linesPerBucket},
		{window: "24h", expectedTotal: 3 * linesPerBucket},
		{window: "48h", expectedTotal: 4 * linesPerBucket},
	}

	failures := 0
	for _, exp := range expectations {
		if err := verifyWindow(baseURL, exp); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: window %s: %v\n", exp.window, err)
			failures++
		} else {
			fmt.Printf("Window %s verified (requests_total=%d)\n", exp.window, exp.expectedTotal)
		}
	}

	fmt.Println()
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d window verifications failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

// generateLogTree builds the per-file line sets. Lines whose timestamp falls
// on an earlier calendar day go to a dated archive; today's lines go to the
// live request.log, which is how the log rotation on the real host behaves.
func generateLogTree(now time.Time) map[string][]string {
	fileLines := make(map[string][]string)
	today := now.Format("2006-01-02")

	for bucketIndex, age := range bucketAges {
		ts := now.Add(-age)
		name := "request.log"
		if day := ts.Format("2006-01-02"); day != today {
			name = "request-" + day + ".log"
			// The oldest archive is compressed the way logrotate leaves it.
			if bucketIndex == len(bucketAges)-1 {
				name += ".gz"
			}
		}

		for i := 0; i < linesPerBucket; i++ {
			line := fmt.Sprintf(`%s - %s [%s] "GET %s HTTP/1.1" %d %d`,
				sourceIPs[i%len(sourceIPs)],
				users[i%len(users)],
				ts.Format("02/Jan/2006:15:04:05 -0700"),
				paths[i%len(paths)],
				statuses[i%len(statuses)],
				100+i%900,
			)
			fileLines[name] = append(fileLines[name], line)
		}
	}

	return fileLines
}

func writeLogTree(dir string, fileLines map[string][]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for name, lines := range fileLines {
		content := []byte(strings.Join(lines, "\n") + "\n")
		path := filepath.Join(dir, name)

		if strings.HasSuffix(name, ".gz") {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			gz := gzip.NewWriter(f)
			if _, err := gz.Write(content); err != nil {
				f.Close()
				return err
			}
			if err := gz.Close(); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			continue
		}

		if err := os.WriteFile(path, content, 0o644); err != nil {
			return err
		}
	}

	return nil
}

func verifyWindow(baseURL string, exp windowExpectation) error {
	resp, err := http.Get(fmt.Sprintf("%s/metrics?window=%s", baseURL, exp.window))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		return fmt.Errorf("unexpected content type %q", ct)
	}

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to parse exposition: %w", err)
	}

	total := int(scalarValue(families, "requests_total"))
	if total != exp.expectedTotal {
		return fmt.Errorf("requests_total = %d, want %d", total, exp.expectedTotal)
	}

	baseline := int(scalarValue(families, "requests_total_last_24h"))
	if baseline != 3*linesPerBucket {
		return fmt.Errorf("requests_total_last_24h = %d, want %d", baseline, 3*linesPerBucket)
	}

	userSum := int(seriesSum(families, "requests_by_user"))
	if userSum != exp.expectedTotal {
		return fmt.Errorf("requests_by_user sum = %d, want %d", userSum, exp.expectedTotal)
	}

	ok := int(labeledValue(families, "status_code_total", "code", "200"))
	notFound := int(labeledValue(families, "status_code_total", "code", "404"))
	if ok != 3*exp.expectedTotal/4 || notFound != exp.expectedTotal/4 {
		return fmt.Errorf("status_code_total 200=%d 404=%d, want %d and %d",
			ok, notFound, 3*exp.expectedTotal/4, exp.expectedTotal/4)
	}

	return nil
}

func metricValue(m *dto.Metric) float64 {
	if m.Counter != nil {
		return m.Counter.GetValue()
	}
	if m.Gauge != nil {
		return m.Gauge.GetValue()
	}
	if m.Untyped != nil {
		return m.Untyped.GetValue()
	}
	return 0
}

func scalarValue(families map[string]*dto.MetricFamily, name string) float64 {
	family, ok := families[name]
	if !ok || len(family.Metric) == 0 {
		return 0
	}
	return metricValue(family.Metric[0])
}

func seriesSum(families map[string]*dto.MetricFamily, name string) float64 {
	family, ok := families[name]
	if !ok {
		return 0
	}
	var sum float64
	for _, m := range family.Metric {
		sum += metricValue(m)
	}
	return sum
}

func labeledValue(families map[string]*dto.MetricFamily, name, labelName, labelValue string) float64 {
	family, ok := families[name]
	if !ok {
		return 0
	}
	for _, m := range family.Metric {
		for _, label := range m.Label {
			if label.GetName() == labelName && label.GetValue() == labelValue {
				return metricValue(m)
			}
		}
	}
	return 0
}
