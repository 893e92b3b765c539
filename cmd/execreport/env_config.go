package main

import (
	"fmt"
	"strings"

	"github.com/alnah/go-execreport/internal/config"
)

// envPrefix marks environment variables read by the CLI.
const envPrefix = "EXECREPORT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // EXECREPORT_CONFIG: config file name or path
	Company    string // EXECREPORT_COMPANY: company name
	Month      string // EXECREPORT_MONTH: reporting period
	Renderer   string // EXECREPORT_RENDERER: markup or canvas
	Timeout    string // EXECREPORT_TIMEOUT: browser timeout
	DocID      string // EXECREPORT_DOC_ID: document ID
}

// knownEnvVars lists valid EXECREPORT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"EXECREPORT_CONFIG":   true,
	"EXECREPORT_COMPANY":  true,
	"EXECREPORT_MONTH":    true,
	"EXECREPORT_RENDERER": true,
	"EXECREPORT_TIMEOUT":  true,
	"EXECREPORT_DOC_ID":   true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("EXECREPORT_CONFIG"),
		Company:    getenv("EXECREPORT_COMPANY"),
		Month:      getenv("EXECREPORT_MONTH"),
		Renderer:   getenv("EXECREPORT_RENDERER"),
		Timeout:    getenv("EXECREPORT_TIMEOUT"),
		DocID:      getenv("EXECREPORT_DOC_ID"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized EXECREPORT_* variables.
func warnUnknownEnvVars(env *Environment) {
	if env.Environ == nil {
		return
	}
	for _, kv := range env.Environ() {
		if strings.HasPrefix(kv, envPrefix) {
			name := strings.SplitN(kv, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(env.Stderr, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Company != "" {
		cfg.Report.Company = env.Company
	}
	if env.Month != "" {
		cfg.Report.Period = env.Month
	}
	if env.Renderer != "" {
		cfg.Render.Renderer = env.Renderer
	}
	if env.Timeout != "" {
		cfg.Render.Timeout = env.Timeout
	}
	if env.DocID != "" {
		cfg.Report.DocumentID = env.DocID
	}
}
