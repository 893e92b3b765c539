package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-execreport"
	"github.com/alnah/go-execreport/internal/config"
	"github.com/alnah/go-execreport/internal/fileutil"
)

// defaultInitPath is the file written by init without an argument.
const defaultInitPath = "execreport.yaml"

// runInit writes a config file filled with the sample report, ready to edit.
func runInit(args []string, env *Environment) error {
	var force bool
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args()[1:])
	}

	path := defaultInitPath
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	if !force && fileutil.FileExists(path) {
		return fmt.Errorf("%s: %w (use --force to overwrite)", path, os.ErrExist)
	}

	data, err := config.Marshal(sampleConfig())
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %s: %v", execreport.ErrWriteOutput, path, err)
	}

	fmt.Fprintf(env.Stdout, "Created config: %s\n", path)
	return nil
}

// sampleConfig returns the defaults with the sample report content spelled out.
func sampleConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Report.Company = execreport.DefaultCompany
	cfg.Report.Note = execreport.SampleNote
	cfg.Report.Highlights = execreport.SampleHighlights()

	for _, m := range execreport.SampleMetrics() {
		cfg.Report.Metrics = append(cfg.Report.Metrics, config.MetricConfig{Label: m.Label, Value: m.Value, Delta: m.Delta})
	}
	for _, k := range execreport.SampleKPIs() {
		cfg.Report.KPIs = append(cfg.Report.KPIs, config.KPIConfig{Label: k.Label, Score: k.Score})
	}

	p := execreport.DefaultPalette()
	cfg.Palette = config.PaletteConfig{
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
	cfg.Render.Timeout = "30s"
	return cfg
}
