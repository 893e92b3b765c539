package main

// Notes:
// - parseGenerateFlags: we test short and long forms, and the errors that map
//   to exit code 2.
// - mergeFlags / buildReportData: we test precedence and the sample fallback.
//   Rendering itself is covered by the root package tests.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-execreport"
	"github.com/alnah/go-execreport/internal/config"
	"github.com/alnah/go-execreport/internal/dateutil"
)

// ---------------------------------------------------------------------------
// TestParseGenerateFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	f, err := parseGenerateFlags([]string{
		"-o", "out.pdf", "--html", "out.html", "--company", "Acme Inc",
		"--month", "March 2025", "--html-only", "--dump-manifest", "m.json",
		"-r", "canvas", "-c", "board", "-t", "1m", "--download-browser",
		"--doc-id", "DOC-7", "--asset-path", "assets", "-v",
	})
	if err != nil {
		t.Fatalf("parseGenerateFlags() error = %v", err)
	}

	checks := []struct {
		name, got, want string
	}{
		{"output", f.output.pdf, "out.pdf"},
		{"html", f.output.html, "out.html"},
		{"manifest", f.output.manifest, "m.json"},
		{"company", f.report.company, "Acme Inc"},
		{"month", f.report.month, "March 2025"},
		{"doc-id", f.report.documentID, "DOC-7"},
		{"renderer", f.render.renderer, "canvas"},
		{"timeout", f.render.timeout, "1m"},
		{"asset-path", f.render.assetPath, "assets"},
		{"config", f.common.config, "board"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if !f.output.htmlOnly || !f.render.downloadBrowser || !f.common.verbose {
		t.Errorf("bool flags not set: %+v", f)
	}
}

func TestParseGenerateFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown flag", []string{"--colour"}, ErrInvalidFlag},
		{"missing value", []string{"--output"}, ErrInvalidFlag},
		{"positional", []string{"extra"}, ErrUnexpectedArgs},
		{"quiet and verbose", []string{"-qv"}, ErrInvalidFlag},
		{"no-html with html-only", []string{"--no-html", "--html-only"}, ErrInvalidFlag},
		{"no-html with html path", []string{"--no-html", "--html", "r.html"}, ErrInvalidFlag},
		{"help", []string{"-h"}, flag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseGenerateFlags(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parseGenerateFlags(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - Flags override config values
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Report.Company = "From Config"
	cfg.Render.Timeout = "10s"

	f := &generateFlags{}
	f.report.company = "From Flag"
	f.render.renderer = "Canvas"
	f.output.htmlOnly = true

	if err := mergeFlags(f, cfg); err != nil {
		t.Fatalf("mergeFlags() error = %v", err)
	}
	if cfg.Report.Company != "From Flag" {
		t.Errorf("Company = %q, want flag value", cfg.Report.Company)
	}
	if cfg.Render.Renderer != "Canvas" {
		t.Errorf("Renderer = %q, want Canvas", cfg.Render.Renderer)
	}
	if cfg.Render.Timeout != "10s" {
		t.Errorf("Timeout = %q, unset flag should keep config value", cfg.Render.Timeout)
	}
	if !cfg.Output.HTMLOnly {
		t.Error("HTMLOnly should be set")
	}
	if cfg.Output.PDF != "premium_report.pdf" {
		t.Errorf("PDF = %q, want default", cfg.Output.PDF)
	}
}

func TestMergeFlags_NoHTML(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	f := &generateFlags{}
	f.output.noHTML = true

	if err := mergeFlags(f, cfg); err != nil {
		t.Fatalf("mergeFlags() error = %v", err)
	}
	if cfg.Output.HTML != "" {
		t.Errorf("HTML = %q, want empty with --no-html", cfg.Output.HTML)
	}
}

func TestCheckRenderer(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "markup", "Canvas", " canvas "} {
		if err := checkRenderer(name); err != nil {
			t.Errorf("checkRenderer(%q) error = %v", name, err)
		}
	}
	for _, name := range []string{"latex", "pdf"} {
		if err := checkRenderer(name); !errors.Is(err, execreport.ErrUnknownRenderer) {
			t.Errorf("checkRenderer(%q) error = %v, want ErrUnknownRenderer", name, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestBuildReportData - Config to report data
// ---------------------------------------------------------------------------

func TestBuildReportData_Defaults(t *testing.T) {
	t.Parallel()

	data, err := buildReportData(config.DefaultConfig(), testNow)
	if err != nil {
		t.Fatalf("buildReportData() error = %v", err)
	}

	if data.Company != execreport.DefaultCompany {
		t.Errorf("Company = %q, want %q", data.Company, execreport.DefaultCompany)
	}
	if data.Period != "March 2025" {
		t.Errorf("Period = %q, want March 2025", data.Period)
	}
	if !data.Generated.Equal(testNow) {
		t.Errorf("Generated = %v, want %v", data.Generated, testNow)
	}
	if len(data.Metrics) != 3 || len(data.Highlights) != 4 || len(data.KPIs) != 5 {
		t.Errorf("sample sizes = %d/%d/%d, want 3/4/5", len(data.Metrics), len(data.Highlights), len(data.KPIs))
	}
	if _, err := uuid.Parse(data.DocumentID); err != nil {
		t.Errorf("DocumentID %q should be a UUID: %v", data.DocumentID, err)
	}
}

func TestBuildReportData_Overrides(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Report = config.ReportConfig{
		Company:    "Acme Inc",
		Period:     "Q1 2025",
		Generated:  "2025-04-01",
		DocumentID: "ACME-Q1",
		Metrics:    []config.MetricConfig{{Label: "ARR", Value: "$9M", Delta: "-1%"}},
		Highlights: []string{"Closed **three** enterprise deals."},
		KPIs:       []config.KPIConfig{{Label: "Hiring", Score: 0.4}},
		Note:       "Unaudited.",
	}

	data, err := buildReportData(cfg, testNow)
	if err != nil {
		t.Fatalf("buildReportData() error = %v", err)
	}

	if data.Company != "Acme Inc" || data.Period != "Q1 2025" || data.DocumentID != "ACME-Q1" {
		t.Errorf("header = %q/%q/%q", data.Company, data.Period, data.DocumentID)
	}
	if want := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC); !data.Generated.Equal(want) {
		t.Errorf("Generated = %v, want %v", data.Generated, want)
	}
	if len(data.Metrics) != 1 || data.Metrics[0].Positive() {
		t.Errorf("Metrics = %+v", data.Metrics)
	}
	if len(data.KPIs) != 1 || data.KPIs[0].Percent() != 40 {
		t.Errorf("KPIs = %+v", data.KPIs)
	}
	if data.Note != "Unaudited." {
		t.Errorf("Note = %q", data.Note)
	}
}

func TestBuildReportData_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.ReportConfig)
		wantErr error
	}{
		{"bad period format", func(r *config.ReportConfig) { r.Period = "auto:[x" }, dateutil.ErrInvalidDateFormat},
		{"bad generated date", func(r *config.ReportConfig) { r.Generated = "14/03/2025" }, dateutil.ErrInvalidDateFormat},
		{"blank company", func(r *config.ReportConfig) { r.Company = "   " }, execreport.ErrInvalidReport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			tt.mutate(&cfg.Report)
			if _, err := buildReportData(cfg, testNow); !errors.Is(err, tt.wantErr) {
				t.Errorf("buildReportData() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolvePeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  string
	}{
		{"auto", "March 2025"},
		{"AUTO", "March 2025"},
		{"auto:month", "March 2025"},
		{"auto:MM/YYYY", "03/2025"},
		{"FY25 Q1", "FY25 Q1"},
		{"Autumn 2025", "Autumn 2025"},
		{"Automation Review Q1", "Automation Review Q1"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			got, err := resolvePeriod(tt.value, testNow)
			if err != nil {
				t.Fatalf("resolvePeriod(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("resolvePeriod(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPrintResult - Success lines
// ---------------------------------------------------------------------------

func TestPrintResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    execreport.Manifest
		want string
	}{
		{"markup", execreport.Manifest{HTML: "r.html", PDF: "r.pdf"}, "Created HTML: r.html\nCreated PDF: r.pdf\n"},
		{"html only", execreport.Manifest{HTML: "r.html"}, "Created HTML only: r.html\n"},
		{"canvas", execreport.Manifest{PDF: "r.pdf"}, "Created PDF: r.pdf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			printResult(&buf, &tt.m)
			if buf.String() != tt.want {
				t.Errorf("printResult() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNewLogger_Quiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	quiet := newLogger(&buf, false)
	quiet.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("non-verbose logger wrote %q", buf.String())
	}

	verbose := newLogger(&buf, true)
	verbose.Debug().Msg("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Errorf("verbose logger output = %q", buf.String())
	}
}
