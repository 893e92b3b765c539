package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for command-line parsing.
var (
	ErrInvalidFlag    = errors.New("invalid flag")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// reportFlags holds report content flags.
type reportFlags struct {
	company    string
	month      string
	documentID string
}

// outputFlags holds output destination flags.
type outputFlags struct {
	pdf      string
	html     string
	manifest string
	htmlOnly bool
	noHTML   bool
}

// renderFlags holds renderer and browser flags.
type renderFlags struct {
	renderer        string
	timeout         string
	assetPath       string
	downloadBrowser bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common commonFlags
	report reportFlags
	output outputFlags
	render renderFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log each pipeline step")
}

// addReportFlags adds report content flags to a FlagSet.
func addReportFlags(fs *flag.FlagSet, f *reportFlags) {
	fs.StringVar(&f.company, "company", "", "company name (default \"Northstar Dynamics\")")
	fs.StringVar(&f.month, "month", "", "reporting period: literal, \"auto\" or \"auto:FORMAT\" (default current month)")
	fs.StringVar(&f.documentID, "doc-id", "", "document ID (\"auto\" = random UUID)")
}

// addOutputFlags adds output destination flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.pdf, "output", "o", "", "output PDF path (default \"premium_report.pdf\")")
	fs.StringVar(&f.html, "html", "", "intermediate HTML path (default \"premium_report.html\")")
	fs.StringVar(&f.manifest, "dump-manifest", "", "write a JSON manifest of generated files")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "generate HTML only, skip PDF conversion")
	fs.BoolVar(&f.noHTML, "no-html", false, "print the PDF without keeping the intermediate HTML file")
}

// addRenderFlags adds renderer flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.renderer, "renderer", "r", "", "renderer: markup, canvas (default \"markup\")")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "browser conversion timeout (default 30s)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles/ and templates/")
	fs.BoolVar(&f.downloadBrowser, "download-browser", false, "download Chromium when no browser is installed")
}

// parseGenerateFlags parses generate command flags.
// The command takes no positional arguments. -h/--help returns flag.ErrHelp.
func parseGenerateFlags(args []string) (*generateFlags, error) {
	f := &generateFlags{}
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addCommonFlags(fs, &f.common)
	addReportFlags(fs, &f.report)
	addOutputFlags(fs, &f.output)
	addRenderFlags(fs, &f.render)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}
	if f.common.quiet && f.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrInvalidFlag)
	}
	if f.output.noHTML && (f.output.htmlOnly || f.output.html != "") {
		return nil, fmt.Errorf("%w: --no-html cannot be combined with --html or --html-only", ErrInvalidFlag)
	}

	return f, nil
}
