package execreport

import (
	"time"

	"github.com/rs/zerolog"
)

// Default browser conversion timeout.
const defaultTimeout = 30 * time.Second

// options collects settings shared by renderers, the browser converter and
// the generator. Each constructor reads the fields it cares about.
type options struct {
	timeout         time.Duration
	downloadBrowser bool
	palette         Palette
	assetPath       string
	renderer        Renderer
	converter       PDFConverter
	logger          *zerolog.Logger
	uncompressed    bool
}

func defaultOptions() options {
	return options{
		timeout: defaultTimeout,
		palette: DefaultPalette(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a Generator, a renderer or a BrowserConverter.
type Option func(*options)

// WithTimeout bounds each browser conversion. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithBrowserDownload lets go-rod download Chromium when no local browser is
// found. Off by default: a missing browser is reported as ErrDependencyMissing.
func WithBrowserDownload(enabled bool) Option {
	return func(o *options) {
		o.downloadBrowser = enabled
	}
}

// WithPalette overrides the non-empty roles of the default palette.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = o.palette.Merge(p)
	}
}

// WithAssetPath loads the stylesheet and template from a directory, falling
// back to the embedded assets for anything it does not contain.
func WithAssetPath(path string) Option {
	return func(o *options) {
		o.assetPath = path
	}
}

// WithRenderer selects the renderer used by a Generator.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithPDFConverter replaces the headless browser used by the markup pipeline.
func WithPDFConverter(c PDFConverter) Option {
	return func(o *options) {
		o.converter = c
	}
}

// WithLogger sets the logger for pipeline progress. Without it, Generate
// logs to the logger attached to its context, if any.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &l
	}
}

// withoutCompression leaves canvas PDF content streams as plain text.
func withoutCompression() Option {
	return func(o *options) {
		o.uncompressed = true
	}
}
