package exporters_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nexus-exporter/internal/exporters"
	"nexus-exporter/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exporter.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestShellRunner_StdoutOnSuccess(t *testing.T) {
	t.Parallel()

	script := writeScript(t, `echo "requests_total{window=\"$1\"} 5"`)
	runner := exporters.NewShellRunner(script, time.Minute)

	out, err := runner.Run(context.Background(), "12h")

	require.NoError(t, err)
	assert.Equal(t, "requests_total{window=\"12h\"} 5\n", string(out))
}

func TestShellRunner_StderrOnNonZeroExit(t *testing.T) {
	t.Parallel()

	script := writeScript(t, "echo 'log dir unreadable' >&2\nexit 3\n")
	runner := exporters.NewShellRunner(script, time.Minute)

	out, err := runner.Run(context.Background(), "1h")

	// A failing script is not a service error; its stderr is the payload.
	require.NoError(t, err)
	assert.Equal(t, "log dir unreadable\n", string(out))
}

func TestShellRunner_Timeout(t *testing.T) {
	t.Parallel()

	script := writeScript(t, "sleep 5\n")
	runner := exporters.NewShellRunner(script, 100*time.Millisecond)

	_, err := runner.Run(context.Background(), "1h")

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "EXP_9003", svcErr.Code)
}

func TestShellRunner_NotConfigured(t *testing.T) {
	t.Parallel()

	runner := exporters.NewShellRunner("", time.Minute)

	_, err := runner.Run(context.Background(), "1h")

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "EXP_1001", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
}

func TestShellRunner_MissingScript(t *testing.T) {
	t.Parallel()

	runner := exporters.NewShellRunner(filepath.Join(t.TempDir(), "nope.sh"), time.Minute)

	_, err := runner.Run(context.Background(), "1h")

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.True(t, svcErr.IsInternalError())
}
