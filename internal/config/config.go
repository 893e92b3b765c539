package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-execreport/internal/fileutil"
	"github.com/alnah/go-execreport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxCompanyLength    = 200
	MaxPeriodLength     = 50
	MaxDateLength       = 30
	MaxLabelLength      = 100
	MaxValueLength      = 30
	MaxHighlightLength  = 500
	MaxNoteLength       = 500
	MaxDocumentIDLength = 64
	MaxPathLength       = 4096
)

// Count limits for the fixed two-page layout.
const (
	MaxMetrics    = 3
	MaxHighlights = 6
	MaxKPIs       = 10
)

// userConfigDirName is the directory under os.UserConfigDir searched for named configs.
const userConfigDirName = "go-execreport"

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Config holds all configuration for report generation.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Assets  AssetsConfig  `yaml:"assets"`
	Palette PaletteConfig `yaml:"palette"`
}

// ReportConfig is the report content. Empty sections fall back to the
// built-in sample data.
type ReportConfig struct {
	Company    string         `yaml:"company"`
	Period     string         `yaml:"period"`     // literal, "auto" or "auto:FORMAT"
	Generated  string         `yaml:"generated"`  // literal YYYY-MM-DD or "auto"
	DocumentID string         `yaml:"documentId"` // literal or "auto" for a random UUID
	Metrics    []MetricConfig `yaml:"metrics"`
	Highlights []string       `yaml:"highlights"`
	KPIs       []KPIConfig    `yaml:"kpis"`
	Note       string         `yaml:"note"`
}

// MetricConfig is one headline metric card.
type MetricConfig struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Delta string `yaml:"delta"`
}

// KPIConfig is one KPI row; Score is a fraction in [0,1].
type KPIConfig struct {
	Label string  `yaml:"label"`
	Score float64 `yaml:"score"`
}

// OutputConfig defines output destinations.
type OutputConfig struct {
	PDF      string `yaml:"pdf"`
	HTML     string `yaml:"html"`
	Manifest string `yaml:"manifest"`
	HTMLOnly bool   `yaml:"htmlOnly"`
}

// RenderConfig selects the renderer and browser behaviour.
type RenderConfig struct {
	Renderer        string `yaml:"renderer"` // empty selects the default renderer
	Timeout         string `yaml:"timeout"`  // Go duration, e.g. "45s"
	DownloadBrowser bool   `yaml:"downloadBrowser"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// PaletteConfig overrides palette roles with #rrggbb colors.
type PaletteConfig struct {
	Background string `yaml:"background"`
	Panel      string `yaml:"panel"`
	PanelAlt   string `yaml:"panelAlt"`
	Border     string `yaml:"border"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Accent     string `yaml:"accent"`
	AccentSoft string `yaml:"accentSoft"`
	Positive   string `yaml:"positive"`
	Track      string `yaml:"track"`
}

// Validate checks field lengths, counts and formats. render.renderer is
// left to the renderer registry that owns the names.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := c.Report.validate(); err != nil {
		return err
	}

	for field, value := range map[string]string{
		"output.pdf":      c.Output.PDF,
		"output.html":     c.Output.HTML,
		"output.manifest": c.Output.Manifest,
		"assets.basePath": c.Assets.BasePath,
	} {
		if err := validateFieldLength(field, value, MaxPathLength); err != nil {
			return err
		}
	}

	if c.Render.Timeout != "" {
		d, err := time.ParseDuration(c.Render.Timeout)
		if err != nil {
			return fmt.Errorf("%w: render.timeout %q: %v", ErrInvalidValue, c.Render.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: render.timeout must be positive, got %s", ErrInvalidValue, d)
		}
	}

	return c.Palette.validate()
}

func (r *ReportConfig) validate() error {
	if err := validateFieldLength("report.company", r.Company, MaxCompanyLength); err != nil {
		return err
	}
	if err := validateFieldLength("report.period", r.Period, MaxPeriodLength); err != nil {
		return err
	}
	if err := validateFieldLength("report.generated", r.Generated, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("report.documentId", r.DocumentID, MaxDocumentIDLength); err != nil {
		return err
	}
	if err := validateFieldLength("report.note", r.Note, MaxNoteLength); err != nil {
		return err
	}

	if len(r.Metrics) > MaxMetrics {
		return fmt.Errorf("%w: report.metrics has %d entries (max %d)", ErrInvalidValue, len(r.Metrics), MaxMetrics)
	}
	for i, m := range r.Metrics {
		if strings.TrimSpace(m.Label) == "" {
			return fmt.Errorf("%w: report.metrics[%d].label is required", ErrInvalidValue, i)
		}
		if err := validateFieldLength(fmt.Sprintf("report.metrics[%d].label", i), m.Label, MaxLabelLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("report.metrics[%d].value", i), m.Value, MaxValueLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("report.metrics[%d].delta", i), m.Delta, MaxValueLength); err != nil {
			return err
		}
	}

	if len(r.Highlights) > MaxHighlights {
		return fmt.Errorf("%w: report.highlights has %d entries (max %d)", ErrInvalidValue, len(r.Highlights), MaxHighlights)
	}
	for i, h := range r.Highlights {
		if err := validateFieldLength(fmt.Sprintf("report.highlights[%d]", i), h, MaxHighlightLength); err != nil {
			return err
		}
	}

	if len(r.KPIs) > MaxKPIs {
		return fmt.Errorf("%w: report.kpis has %d entries (max %d)", ErrInvalidValue, len(r.KPIs), MaxKPIs)
	}
	for i, k := range r.KPIs {
		if strings.TrimSpace(k.Label) == "" {
			return fmt.Errorf("%w: report.kpis[%d].label is required", ErrInvalidValue, i)
		}
		if err := validateFieldLength(fmt.Sprintf("report.kpis[%d].label", i), k.Label, MaxLabelLength); err != nil {
			return err
		}
		if math.IsNaN(k.Score) || k.Score < 0 || k.Score > 1 {
			return fmt.Errorf("%w: report.kpis[%d].score must be between 0 and 1, got %v", ErrInvalidValue, i, k.Score)
		}
	}

	return nil
}

func (p *PaletteConfig) validate() error {
	for field, value := range p.roles() {
		if value != "" && !hexColorPattern.MatchString(value) {
			return fmt.Errorf("%w: palette.%s %q (must be #rrggbb)", ErrInvalidValue, field, value)
		}
	}
	return nil
}

// roles maps YAML role names to their configured values.
func (p *PaletteConfig) roles() map[string]string {
	return map[string]string{
		"background": p.Background,
		"panel":      p.Panel,
		"panelAlt":   p.PanelAlt,
		"border":     p.Border,
		"text":       p.Text,
		"muted":      p.Muted,
		"accent":     p.Accent,
		"accentSoft": p.AccentSoft,
		"positive":   p.Positive,
		"track":      p.Track,
	}
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// sample report content, default renderer, outputs in the working directory.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Period:     "auto:month",
			Generated:  "auto",
			DocumentID: "auto",
		},
		Output: OutputConfig{
			PDF:  "premium_report.pdf",
			HTML: "premium_report.html",
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values absent from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML, e.g. for `execreport init`.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, {UserConfigDir}/go-execreport/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, userConfigDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Tried: triedPaths}
}

// NotFoundError reports a config name that matched no file.
// It unwraps to ErrConfigNotFound.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }
