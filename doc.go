// Package execreport renders a two-page executive report as HTML or PDF.
//
// # Quick Start
//
// Build the report data, pick a renderer, and run the generator:
//
//	data := execreport.SampleReport("Acme Inc", "March 2025", time.Now())
//
//	gen, err := execreport.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	manifest, err := gen.Generate(ctx, execreport.Request{
//	    Data:     data,
//	    HTMLPath: "premium_report.html",
//	    PDFPath:  "premium_report.pdf",
//	})
//
// # Renderers
//
// Two renderers produce the same layout:
//
//  1. markup: an HTML template with an embedded print stylesheet. The HTML is
//     written to disk and printed to an A4 PDF by headless Chrome (go-rod).
//     Set Request.HTMLOnly to stop after the HTML file.
//  2. canvas: draws both pages directly with go-pdf/fpdf. No browser needed.
//
// Select one with NewRenderer("markup") or NewRenderer("canvas"), or with
// WithRenderer when constructing a Generator.
//
// # Browser Discovery
//
// The markup pipeline looks for Chrome in ROD_BROWSER_BIN, then in the usual
// install locations. When none is found it fails with ErrDependencyMissing
// unless WithBrowserDownload(true) lets go-rod fetch a Chromium build.
//
// # Errors
//
// Errors wrap the sentinels in errors.go; test them with errors.Is:
//
//	if errors.Is(err, execreport.ErrDependencyMissing) {
//	    // fall back to HTML only
//	}
package execreport
