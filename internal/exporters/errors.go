package exporters

import (
	"fmt"

	"nexus-exporter/internal/shared/svcerrors"
)

// ExportService and ShellRunner errors
const (
	codeInvalidWindow      = "EXP_1000"
	codeShellNotConfigured = "EXP_1001"

	codeInternalFlagLoadFailed = "EXP_9000"
	codeInternalCollectFailed  = "EXP_9001"
	codeInternalRenderFailed   = "EXP_9002"
	codeInternalShellFailed    = "EXP_9003"
)

// codeShellNonZeroExit labels the shell-run metric only; a non-zero exit is
// not an error at the service boundary.
const codeShellNonZeroExit = "EXP_0001"

// ErrInvalidWindow returns an error for a malformed window string. Exported
// because the HTTP boundary enforces the same format for both export
// variants before dispatching.
func ErrInvalidWindow(window string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidWindow,
		fmt.Sprintf("invalid window %q: expected digits followed by 'h' (e.g. 1h, 24h)", window), cause)
}

// errShellNotConfigured returns an error when the shell variant is requested
// without a configured script path.
func errShellNotConfigured() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeShellNotConfigured, "shell exporter is not configured", nil)
}

// errInternalFlagLoadFailed returns an error when the flag list cannot be read.
func errInternalFlagLoadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalFlagLoadFailed, fmt.Errorf("flagLoadFailed: %w", cause))
}

// errInternalCollectFailed returns an error when a log scan fails.
func errInternalCollectFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCollectFailed, fmt.Errorf("collectFailed: %w", cause))
}

// errInternalRenderFailed returns an error when exposition encoding fails.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}

// errInternalShellFailed returns an error when the shell exporter cannot run.
func errInternalShellFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalShellFailed, fmt.Errorf("shellRunFailed: %w", cause))
}
