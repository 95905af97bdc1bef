package validation

// Status values for a validation report.
const (
	StatusPass   = "PASS"
	StatusIssues = "ISSUES"
)

// ReportSummary carries the per-severity flag counts.
type ReportSummary struct {
	TotalFlags int    `json:"total_flags"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
	Info       int    `json:"info"`
	Status     string `json:"status"`
}

// Report is the aggregated outcome of a validation run: all flags in
// emission order, the same flags partitioned by severity, and the
// de-duplicated remediation suggestions.
type Report struct {
	Summary         ReportSummary `json:"validation_summary"`
	Flags           []Flag        `json:"flags"`
	Errors          []Flag        `json:"errors"`
	Warnings        []Flag        `json:"warnings"`
	Info            []Flag        `json:"info"`
	Recommendations []string      `json:"recommendations"`
}

// buildReport partitions flags and derives the summary. Status is PASS only
// when no error-severity flag exists.
func buildReport(flags []Flag) Report {
	r := Report{Flags: flags}

	seen := map[string]bool{}
	for _, f := range flags {
		switch f.Severity {
		case SeverityError:
			r.Errors = append(r.Errors, f)
		case SeverityWarning:
			r.Warnings = append(r.Warnings, f)
		case SeverityInfo:
			r.Info = append(r.Info, f)
		}
		if f.Suggestion != "" && !seen[f.Suggestion] {
			seen[f.Suggestion] = true
			r.Recommendations = append(r.Recommendations, f.Suggestion)
		}
	}

	r.Summary = ReportSummary{
		TotalFlags: len(flags),
		Errors:     len(r.Errors),
		Warnings:   len(r.Warnings),
		Info:       len(r.Info),
		Status:     StatusPass,
	}
	if len(r.Errors) > 0 {
		r.Summary.Status = StatusIssues
	}
	return r
}
