package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-execreport"
	"github.com/alnah/go-execreport/internal/config"
	"github.com/alnah/go-execreport/internal/dateutil"
)

// generatedLayout is the literal format accepted for report.generated.
const generatedLayout = "2006-01-02"

// runGenerate executes the generate command.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseGenerateFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printGenerateUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if err := checkRenderer(cfg.Render.Renderer); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	now := env.Now()
	data, err := buildReportData(cfg, now)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.verbose)
	ctx = logger.WithContext(ctx)

	opts, err := generatorOptions(cfg, env)
	if err != nil {
		return err
	}
	renderer, err := execreport.NewRenderer(cfg.Render.Renderer, opts...)
	if err != nil {
		return err
	}
	gen, err := execreport.NewGenerator(append(opts, execreport.WithRenderer(renderer))...)
	if err != nil {
		return err
	}

	start := time.Now()
	manifest, err := gen.Generate(ctx, execreport.Request{
		Data:         data,
		HTMLPath:     cfg.Output.HTML,
		PDFPath:      cfg.Output.PDF,
		ManifestPath: cfg.Output.Manifest,
		HTMLOnly:     cfg.Output.HTMLOnly,
	})
	if err != nil {
		return err
	}
	logger.Debug().Dur("elapsed", time.Since(start)).Str("document_id", data.DocumentID).Msg("report generated")

	if !flags.common.quiet {
		printResult(env.Stdout, manifest)
	}
	return nil
}

// loadConfig loads the config named by the flag, then EXECREPORT_CONFIG,
// and falls back to the defaults when neither is set.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// mergeFlags applies explicitly set flags over the config.
func mergeFlags(f *generateFlags, cfg *config.Config) error {
	if f.render.renderer != "" {
		cfg.Render.Renderer = f.render.renderer
	}
	if f.render.timeout != "" {
		cfg.Render.Timeout = f.render.timeout
	}
	if f.render.assetPath != "" {
		cfg.Assets.BasePath = f.render.assetPath
	}
	if f.render.downloadBrowser {
		cfg.Render.DownloadBrowser = true
	}

	if f.report.company != "" {
		cfg.Report.Company = f.report.company
	}
	if f.report.month != "" {
		cfg.Report.Period = f.report.month
	}
	if f.report.documentID != "" {
		cfg.Report.DocumentID = f.report.documentID
	}

	if f.output.pdf != "" {
		cfg.Output.PDF = f.output.pdf
	}
	if f.output.html != "" {
		cfg.Output.HTML = f.output.html
	}
	if f.output.manifest != "" {
		cfg.Output.Manifest = f.output.manifest
	}
	if f.output.htmlOnly {
		cfg.Output.HTMLOnly = true
	}
	if f.output.noHTML {
		cfg.Output.HTML = ""
	}
	return nil
}

// checkRenderer rejects a renderer name from any source that NewRenderer
// would not accept. Empty selects the default renderer.
func checkRenderer(name string) error {
	if name == "" || isRendererName(name) {
		return nil
	}
	return fmt.Errorf("%w: %q (available: %s)", execreport.ErrUnknownRenderer, name, strings.Join(execreport.RendererNames(), ", "))
}

// isRendererName reports whether name selects a known renderer.
func isRendererName(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range execreport.RendererNames() {
		if name == n {
			return true
		}
	}
	return false
}

// buildReportData turns the report section into ReportData. Absent
// metrics, highlights, KPIs and note come from the sample report.
func buildReportData(cfg *config.Config, now time.Time) (*execreport.ReportData, error) {
	r := cfg.Report

	period, err := resolvePeriod(r.Period, now)
	if err != nil {
		return nil, err
	}
	generated, err := resolveGenerated(r.Generated, now)
	if err != nil {
		return nil, err
	}

	data := execreport.SampleReport(r.Company, period, generated)

	if len(r.Metrics) > 0 {
		data.Metrics = make([]execreport.Metric, len(r.Metrics))
		for i, m := range r.Metrics {
			data.Metrics[i] = execreport.Metric{Label: m.Label, Value: m.Value, Delta: m.Delta}
		}
	}
	if len(r.Highlights) > 0 {
		data.Highlights = append([]string(nil), r.Highlights...)
	}
	if len(r.KPIs) > 0 {
		data.KPIs = make([]execreport.KPI, len(r.KPIs))
		for i, k := range r.KPIs {
			data.KPIs[i] = execreport.KPI{Label: k.Label, Score: k.Score}
		}
	}
	if r.Note != "" {
		data.Note = r.Note
	}

	switch strings.ToLower(r.DocumentID) {
	case "auto":
		data.DocumentID = uuid.NewString()
	default:
		data.DocumentID = r.DocumentID
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}

// resolvePeriod resolves "auto" values; bare "auto" means the month name.
func resolvePeriod(value string, now time.Time) (string, error) {
	if strings.EqualFold(value, "auto") {
		value = dateutil.AutoMonth
	}
	return dateutil.ResolveDate(value, now)
}

// resolveGenerated parses report.generated: "auto" or empty means now.
func resolveGenerated(value string, now time.Time) (time.Time, error) {
	if value == "" || strings.EqualFold(value, "auto") {
		return now, nil
	}
	t, err := time.Parse(generatedLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: report.generated %q (want YYYY-MM-DD or auto)", dateutil.ErrInvalidDateFormat, value)
	}
	return t, nil
}

// generatorOptions maps the render, assets and palette sections to
// generator options.
func generatorOptions(cfg *config.Config, env *Environment) ([]execreport.Option, error) {
	opts := []execreport.Option{
		execreport.WithBrowserDownload(cfg.Render.DownloadBrowser),
		execreport.WithAssetPath(cfg.Assets.BasePath),
		execreport.WithPalette(paletteFromConfig(cfg.Palette)),
	}

	if cfg.Render.Timeout != "" {
		d, err := time.ParseDuration(cfg.Render.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%w: timeout %q: %v", ErrInvalidFlag, cfg.Render.Timeout, err)
		}
		opts = append(opts, execreport.WithTimeout(d))
	}

	if env.Converter != nil {
		opts = append(opts, execreport.WithPDFConverter(env.Converter))
	}
	return opts, nil
}

func paletteFromConfig(p config.PaletteConfig) execreport.Palette {
	return execreport.Palette{
		Background: p.Background,
		Panel:      p.Panel,
		PanelAlt:   p.PanelAlt,
		Border:     p.Border,
		Text:       p.Text,
		Muted:      p.Muted,
		Accent:     p.Accent,
		AccentSoft: p.AccentSoft,
		Positive:   p.Positive,
		Track:      p.Track,
	}
}

// newLogger returns a console logger on w when verbose, or a disabled one.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	return zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// printResult prints the files listed in the manifest.
func printResult(w io.Writer, m *execreport.Manifest) {
	switch {
	case m.HTML != "" && m.PDF != "":
		fmt.Fprintf(w, "Created HTML: %s\n", m.HTML)
		fmt.Fprintf(w, "Created PDF: %s\n", m.PDF)
	case m.HTML != "":
		fmt.Fprintf(w, "Created HTML only: %s\n", m.HTML)
	default:
		fmt.Fprintf(w, "Created PDF: %s\n", m.PDF)
	}
}
