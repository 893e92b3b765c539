package execreport

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

// newTestBrowserConverter returns a converter with a fake environment.
func newTestBrowserConverter(env map[string]string, installed string, opts ...Option) *BrowserConverter {
	c := NewBrowserConverter(opts...)
	c.getenv = func(key string) string { return env[key] }
	c.lookPath = func() (string, bool) { return installed, installed != "" }
	return c
}

func TestBrowserConverter_BrowserPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		env       map[string]string
		installed string
		download  bool
		want      string
		wantErr   error
	}{
		{
			name:      "env variable wins",
			env:       map[string]string{"ROD_BROWSER_BIN": "/opt/chrome"},
			installed: "/usr/bin/chromium",
			want:      "/opt/chrome",
		},
		{
			name:      "installed browser",
			installed: "/usr/bin/chromium",
			want:      "/usr/bin/chromium",
		},
		{
			name:     "download enabled returns empty path",
			download: true,
			want:     "",
		},
		{
			name:    "nothing found",
			wantErr: ErrDependencyMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestBrowserConverter(tt.env, tt.installed, WithBrowserDownload(tt.download))
			got, err := c.BrowserPath()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("BrowserPath() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("BrowserPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BrowserPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBrowserConverter_MissingDependency(t *testing.T) {
	t.Parallel()

	c := newTestBrowserConverter(nil, "")

	t.Run("ConvertFile", func(t *testing.T) {
		t.Parallel()

		pdf, err := c.ConvertFile(context.Background(), "report.html")
		if !errors.Is(err, ErrDependencyMissing) {
			t.Fatalf("ConvertFile() error = %v, want ErrDependencyMissing", err)
		}
		if pdf != nil {
			t.Error("ConvertFile() returned bytes with an error")
		}
		if !strings.Contains(err.Error(), "ROD_BROWSER_BIN") {
			t.Errorf("error %q should say how to point at a browser", err)
		}
	})

	t.Run("ConvertHTML", func(t *testing.T) {
		t.Parallel()

		if _, err := c.ConvertHTML(context.Background(), "<html></html>"); !errors.Is(err, ErrDependencyMissing) {
			t.Errorf("ConvertHTML() error = %v, want ErrDependencyMissing", err)
		}
	})
}

func TestBrowserConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	c := newTestBrowserConverter(nil, "/usr/bin/chromium")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.ConvertFile(ctx, "report.html"); !errors.Is(err, context.Canceled) {
		t.Errorf("ConvertFile() error = %v, want context.Canceled", err)
	}
}

func TestNewBrowserConverter_Timeout(t *testing.T) {
	t.Parallel()

	if got := NewBrowserConverter().timeout; got != defaultTimeout {
		t.Errorf("default timeout = %v, want %v", got, defaultTimeout)
	}
	if got := NewBrowserConverter(WithTimeout(2 * time.Minute)).timeout; got != 2*time.Minute {
		t.Errorf("timeout = %v, want 2m", got)
	}
	if got := NewBrowserConverter(WithTimeout(-time.Second)).timeout; got != defaultTimeout {
		t.Errorf("negative timeout should be ignored, got %v", got)
	}
}

func TestPrintOptions(t *testing.T) {
	t.Parallel()

	opts := printOptions()

	near := func(got *float64, wantMM float64) bool {
		return got != nil && math.Abs(*got*mmPerInch-wantMM) < 1e-9
	}

	if !near(opts.PaperWidth, 210) || !near(opts.PaperHeight, 297) {
		t.Errorf("paper = %v x %v in, want A4", *opts.PaperWidth, *opts.PaperHeight)
	}
	for name, m := range map[string]*float64{
		"top": opts.MarginTop, "bottom": opts.MarginBottom,
		"left": opts.MarginLeft, "right": opts.MarginRight,
	} {
		if !near(m, 14) {
			t.Errorf("margin %s is not 14mm", name)
		}
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground should be true")
	}
}

func TestToFileURL(t *testing.T) {
	t.Parallel()

	got, err := toFileURL("out/premium report.html")
	if err != nil {
		t.Fatalf("toFileURL() error = %v", err)
	}
	if !strings.HasPrefix(got, "file:///") {
		t.Errorf("toFileURL() = %q, want absolute file URL", got)
	}
	if !strings.HasSuffix(got, "/out/premium%20report.html") {
		t.Errorf("toFileURL() = %q, want escaped path suffix", got)
	}
}

func TestBrowserError(t *testing.T) {
	t.Parallel()

	cause := errors.New("websocket closed")

	err := browserError(context.Background(), ErrPageLoad, cause)
	if !errors.Is(err, ErrPageLoad) || errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("live context: error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err = browserError(ctx, ErrPDFGeneration, cause)
	if !errors.Is(err, ErrPDFGeneration) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expired context: error = %v, want ErrPDFGeneration and DeadlineExceeded", err)
	}
	if !strings.Contains(err.Error(), "websocket closed") {
		t.Errorf("error %q should keep the cause", err)
	}
}
