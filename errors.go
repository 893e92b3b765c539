package execreport

import "errors"

// Sentinel errors for library operations.
var (
	// Browser conversion errors.
	ErrDependencyMissing = errors.New("headless browser not available")
	ErrBrowserConnect    = errors.New("failed to connect to browser")
	ErrPageCreate        = errors.New("failed to create browser page")
	ErrPageLoad          = errors.New("failed to load page")
	ErrPDFGeneration     = errors.New("PDF generation failed")

	// Rendering errors.
	ErrCanvasRender     = errors.New("canvas rendering failed")
	ErrTemplateRender   = errors.New("report template rendering failed")
	ErrUnknownRenderer  = errors.New("unknown renderer")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Report data validation errors.
	ErrInvalidReport = errors.New("invalid report data")
	ErrInvalidScore  = errors.New("KPI score out of range")

	// Generate request errors.
	ErrInvalidRequest = errors.New("invalid generate request")

	// Output errors.
	ErrWriteOutput = errors.New("failed to write output file")
)
