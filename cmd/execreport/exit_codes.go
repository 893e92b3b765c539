package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-execreport"
	"github.com/alnah/go-execreport/internal/config"
	"github.com/alnah/go-execreport/internal/dateutil"
)

// Exit codes for the execreport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Report generated
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or report data
	ExitIO         = 3 // File not found, permission denied, write failure
	ExitBrowser    = 4 // Browser/Chrome errors
	ExitDependency = 5 // No headless browser available
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Missing browser (exit 5)
	if errors.Is(err, execreport.ErrDependencyMissing) {
		return ExitDependency
	}

	// Browser errors (exit 4)
	if errors.Is(err, execreport.ErrBrowserConnect) ||
		errors.Is(err, execreport.ErrPageCreate) ||
		errors.Is(err, execreport.ErrPageLoad) ||
		errors.Is(err, execreport.ErrPDFGeneration) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, os.ErrExist) ||
		errors.Is(err, execreport.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, execreport.ErrUnknownRenderer) ||
		errors.Is(err, execreport.ErrInvalidReport) ||
		errors.Is(err, execreport.ErrInvalidScore) ||
		errors.Is(err, execreport.ErrInvalidRequest) ||
		errors.Is(err, execreport.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
