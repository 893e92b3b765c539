package execreport

import "time"

// DefaultCompany is the company name used when none is given.
const DefaultCompany = "Northstar Dynamics"

// PeriodLayout formats the default reporting period, e.g. "March 2025".
const PeriodLayout = "January 2006"

// DefaultPeriod returns the month of now formatted with PeriodLayout.
func DefaultPeriod(now time.Time) string {
	return now.Format(PeriodLayout)
}

// SampleReport returns the built-in demonstration report.
// Empty company or period fall back to DefaultCompany and DefaultPeriod(now).
func SampleReport(company, period string, now time.Time) *ReportData {
	if company == "" {
		company = DefaultCompany
	}
	if period == "" {
		period = DefaultPeriod(now)
	}

	return &ReportData{
		Company:    company,
		Period:     period,
		Generated:  now,
		Metrics:    SampleMetrics(),
		Highlights: SampleHighlights(),
		KPIs:       SampleKPIs(),
		Note:       SampleNote,
	}
}

// SampleNote is the KPI page footnote of the sample report.
const SampleNote = "Values are normalized against quarterly targets and seasonality adjustments."

// SampleMetrics returns the three sample headline metrics.
func SampleMetrics() []Metric {
	return []Metric{
		{Label: "Revenue", Value: "$4.28M", Delta: "+12.4%"},
		{Label: "Gross Margin", Value: "63.8%", Delta: "+2.1%"},
		{Label: "NPS", Value: "72", Delta: "+5 pts"},
	}
}

// SampleHighlights returns the four sample strategic highlights.
func SampleHighlights() []string {
	return []string{
		"Pipeline quality improved due to tighter qualification workflows.",
		"Regional expansion contributed 31% of net-new growth this month.",
		"Onboarding cycle reduced by 18%, improving activation conversion and retention.",
		"Recommend increasing enterprise ABM budget by 8% next quarter.",
	}
}

// SampleKPIs returns the five sample KPI rows.
func SampleKPIs() []KPI {
	return []KPI{
		{Label: "Enterprise Pipeline", Score: 0.84},
		{Label: "Product Adoption", Score: 0.68},
		{Label: "Retention Expansion", Score: 0.77},
		{Label: "Support SLA Compliance", Score: 0.92},
		{Label: "Partner Channel Activation", Score: 0.58},
	}
}
