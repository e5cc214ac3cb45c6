package exporters

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"nexus-exporter/internal/shared/metrics"
)

const defaultShellTimeout = 60 * time.Second

// ShellRunner executes the legacy shell exporter, bypassing the aggregation
// engine entirely.
//
//go:generate mockgen -source=shell_runner.go -destination=./mocks/shell_runner_mock.go -package=mocks
type ShellRunner interface {
	// Run invokes the script with the window as its sole argument. It
	// returns stdout verbatim on success and stderr verbatim on non-zero
	// exit; the script's own diagnostics are the payload either way.
	Run(ctx context.Context, window string) ([]byte, error)
}

type shellRunner struct {
	scriptPath string
	timeout    time.Duration
}

func NewShellRunner(scriptPath string, timeout time.Duration) ShellRunner {
	if timeout <= 0 {
		timeout = defaultShellTimeout
	}
	return &shellRunner{scriptPath: scriptPath, timeout: timeout}
}

func (r *shellRunner) Run(ctx context.Context, window string) ([]byte, error) {
	if r.scriptPath == "" {
		return nil, errShellNotConfigured()
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.scriptPath, window)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		metricShellRunsTotal.WithLabelValues(codeInternalShellFailed).Inc()
		return nil, errInternalShellFailed(ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		metricShellRunsTotal.WithLabelValues(codeShellNonZeroExit).Inc()
		return stderr.Bytes(), nil
	}
	if err != nil {
		metricShellRunsTotal.WithLabelValues(codeInternalShellFailed).Inc()
		return nil, errInternalShellFailed(err)
	}

	metricShellRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return stdout.Bytes(), nil
}
