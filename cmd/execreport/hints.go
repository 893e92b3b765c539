package main

import (
	"context"
	"errors"

	"github.com/alnah/go-execreport"
	"github.com/alnah/go-execreport/internal/config"
	"github.com/alnah/go-execreport/internal/hints"
)

// hintFor returns the remediation hint for err, or "" when none applies.
func hintFor(err error) string {
	var notFound *config.NotFoundError

	switch {
	case errors.Is(err, execreport.ErrDependencyMissing):
		return hints.ForDependencyMissing()
	case errors.Is(err, execreport.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.As(err, &notFound):
		return hints.ForConfigNotFound(notFound.Tried)
	case errors.Is(err, execreport.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, execreport.ErrUnknownRenderer):
		return hints.ForUnknownRenderer(execreport.RendererNames())
	}
	return ""
}
