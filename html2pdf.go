package execreport

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-execreport/internal/fileutil"
	"github.com/alnah/go-execreport/internal/process"
)

// PDFConverter prints HTML to PDF, either from a file on disk or from a
// document held in memory.
type PDFConverter interface {
	ConvertFile(ctx context.Context, htmlPath string) ([]byte, error)
	ConvertHTML(ctx context.Context, htmlContent string) ([]byte, error)
}

// Compile-time interface check.
var _ PDFConverter = (*BrowserConverter)(nil)

// A4 print geometry in inches, the unit Chrome's printToPDF takes.
const (
	mmPerInch     = 25.4
	paperWidthIn  = PageWidth / mmPerInch
	paperHeightIn = PageHeight / mmPerInch
	marginIn      = PageMargin / mmPerInch
)

// requestIdle is how long the page must be free of network requests
// before it is printed.
const requestIdle = 300 * time.Millisecond

// envBrowserBin names the variable pointing at a preinstalled browser.
const envBrowserBin = "ROD_BROWSER_BIN"

// BrowserConverter prints HTML to PDF with headless Chrome via go-rod.
// Every conversion launches its own browser and tears it down afterwards.
type BrowserConverter struct {
	timeout  time.Duration
	download bool

	// Injected for tests.
	getenv   func(string) string
	lookPath func() (string, bool)
}

// NewBrowserConverter creates a BrowserConverter.
// Honours WithTimeout and WithBrowserDownload.
func NewBrowserConverter(opts ...Option) *BrowserConverter {
	o := applyOptions(opts)
	return &BrowserConverter{
		timeout:  o.timeout,
		download: o.downloadBrowser,
		getenv:   os.Getenv,
		lookPath: launcher.LookPath,
	}
}

// BrowserPath reports the browser a conversion would launch.
// Returns ErrDependencyMissing when none is installed and download is off.
// An empty path with a nil error means go-rod will download Chromium.
func (c *BrowserConverter) BrowserPath() (string, error) {
	if bin := c.getenv(envBrowserBin); bin != "" {
		return bin, nil
	}
	if path, found := c.lookPath(); found {
		return path, nil
	}
	if c.download {
		return "", nil
	}
	return "", fmt.Errorf("%w: no Chrome or Chromium executable found (set %s or enable browser download)", ErrDependencyMissing, envBrowserBin)
}

// ConvertHTML writes htmlContent to a temporary file and prints it.
func (c *BrowserConverter) ConvertHTML(ctx context.Context, htmlContent string) ([]byte, error) {
	// Fail before touching the filesystem.
	if _, err := c.BrowserPath(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.ConvertFile(ctx, tmpPath)
}

// ConvertFile opens a local HTML file in headless Chrome and prints it as
// A4 with 14mm margins and backgrounds preserved.
func (c *BrowserConverter) ConvertFile(ctx context.Context, htmlPath string) (pdf []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bin, err := c.BrowserPath()
	if err != nil {
		return nil, err
	}

	fileURL, err := toFileURL(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	l := launcher.New().Context(ctx)
	if bin != "" {
		l = l.Bin(bin)
	}
	// NoSandbox required for CI and containerized environments
	if c.getenv("CI") == "true" || c.getenv(envBrowserBin) != "" {
		l = l.NoSandbox(true)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, browserError(ctx, ErrBrowserConnect, err)
	}
	pid := l.PID()
	defer func() {
		l.Kill()
		process.KillProcessGroup(pid)
		l.Cleanup()
	}()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, browserError(ctx, ErrBrowserConnect, err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, browserError(ctx, ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	waitIdle := page.WaitRequestIdle(requestIdle, nil, nil, nil)
	if err := page.Navigate(fileURL); err != nil {
		return nil, browserError(ctx, ErrPageLoad, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, browserError(ctx, ErrPageLoad, err)
	}
	waitIdle()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(printOptions())
	if err != nil {
		return nil, browserError(ctx, ErrPDFGeneration, err)
	}

	pdf, err = io.ReadAll(reader)
	if err != nil {
		return nil, browserError(ctx, ErrPDFGeneration, fmt.Errorf("reading PDF stream: %v", err))
	}
	return pdf, nil
}

// browserError wraps err in sentinel, keeping the context error when the
// deadline or a cancellation caused the failure.
func browserError(ctx context.Context, sentinel, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w: %v", sentinel, ctxErr, err)
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

// printOptions returns the A4 print settings.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(paperWidthIn),
		PaperHeight:       floatPtr(paperHeightIn),
		MarginTop:         floatPtr(marginIn),
		MarginBottom:      floatPtr(marginIn),
		MarginLeft:        floatPtr(marginIn),
		MarginRight:       floatPtr(marginIn),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// toFileURL converts a local path to an absolute file:// URL.
func toFileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // Windows drive letter
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
