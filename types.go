package execreport

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Metric is a headline figure shown in one of the title page cards.
type Metric struct {
	Label string // e.g. "Revenue"
	Value string // pre-formatted, e.g. "$4.28M"
	Delta string // pre-formatted change, e.g. "+12.4%"
}

// Positive reports whether Delta reads as an increase.
func (m Metric) Positive() bool {
	return strings.HasPrefix(strings.TrimSpace(m.Delta), "+")
}

// KPI is one row of the KPI matrix. Score is the attainment fraction in [0,1].
type KPI struct {
	Label string
	Score float64
}

// Percent returns the score as a whole percentage.
func (k KPI) Percent() int {
	return Percent(k.Score)
}

// ReportData is everything a renderer needs to draw the report.
// Renderers hold no report content of their own.
type ReportData struct {
	Company    string
	Period     string // display string, e.g. "March 2025"
	Generated  time.Time
	Metrics    []Metric
	Highlights []string
	KPIs       []KPI
	Note       string
	DocumentID string // optional; printed in the footer and PDF metadata
}

// Validate checks that the data can be drawn.
// Does not mutate.
func (d *ReportData) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil report", ErrInvalidReport)
	}
	if strings.TrimSpace(d.Company) == "" {
		return fmt.Errorf("%w: company is required", ErrInvalidReport)
	}
	if strings.TrimSpace(d.Period) == "" {
		return fmt.Errorf("%w: period is required", ErrInvalidReport)
	}
	for i, m := range d.Metrics {
		if strings.TrimSpace(m.Label) == "" {
			return fmt.Errorf("%w: metric %d has no label", ErrInvalidReport, i)
		}
	}
	for i, k := range d.KPIs {
		if strings.TrimSpace(k.Label) == "" {
			return fmt.Errorf("%w: KPI %d has no label", ErrInvalidReport, i)
		}
		if !validScore(k.Score) {
			return fmt.Errorf("%w: %q = %v (must be between 0 and 1)", ErrInvalidScore, k.Label, k.Score)
		}
	}
	return nil
}

func validScore(s float64) bool {
	return !math.IsNaN(s) && s >= 0 && s <= 1
}

// generatedLabel formats the generation date the way both renderers print it.
func (d *ReportData) generatedLabel() string {
	if d.Generated.IsZero() {
		return ""
	}
	return d.Generated.Format("2006-01-02")
}

// subtitle is the line under the summary page title. The generation date
// is left out when unknown.
func (d *ReportData) subtitle() string {
	s := "Prepared for leadership • Period: " + d.Period
	if g := d.generatedLabel(); g != "" {
		s += " • Generated: " + g
	}
	return s
}
