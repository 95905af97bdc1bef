// Package pipeline sequences extraction, template mapping and validation
// into one report-generation run. It owns no business logic: each stage is a
// deterministic function and the runner only wires them together.
package pipeline

import (
	"time"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/extract"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/template"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/validation"
)

// Result is the full outcome of one pipeline run.
type Result struct {
	Record   model.CapitalRecord `json:"record"`
	Summary  model.Summary       `json:"summary"`
	Notes    []string            `json:"normalization_notes,omitempty"`
	Rows     []model.ReportRow   `json:"rows"`
	Report   validation.Report   `json:"validation_report"`
	Passages []model.Passage     `json:"supporting_passages,omitempty"`
}

// Runner executes the core pipeline. Now is injectable for deterministic
// tests; the zero value uses the wall clock. Currency is the configured
// default applied when the input names none (empty means GBP).
type Runner struct {
	Now      func() time.Time
	Currency string
}

// Run extracts a record from the raw guess, maps it onto the template and
// validates it. Passages are passed through to the result untouched. If
// extraction fails the run fails as a whole; past a valid record the run
// always completes, even when validation reports issues.
func (p Runner) Run(raw extract.RawGuess, passages []model.Passage) (Result, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	ext, err := extract.Extract(raw, now(), p.Currency)
	if err != nil {
		return Result{}, err
	}

	rows := template.Map(ext.Record)
	report := validation.Validate(ext.Record, rows, now())

	return Result{
		Record:   ext.Record,
		Summary:  ext.Record.Summarize(),
		Notes:    ext.Notes,
		Rows:     rows,
		Report:   report,
		Passages: passages,
	}, nil
}
