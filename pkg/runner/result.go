package runner

import (
	"github.com/flintlabs/flint/pkg/fix"
	"github.com/flintlabs/flint/pkg/lint"
)

// FileOutcome is the result of processing a single dump file.
type FileOutcome struct {
	// Path is the dump file path.
	Path string

	// Result is the analysis result. Nil when Err is set.
	Result *lint.Result

	// Applied contains fixes applied to this document, source order.
	Applied []fix.Proposal

	// Skipped contains fixes dropped for span conflicts or lost targets.
	Skipped []fix.Proposal

	// Written is true when a fixed dump was written back to disk.
	Written bool

	// Err is a per-file processing error (decode or write failure).
	// Analysis faults are in Result.Faults instead.
	Err error
}

// Stats aggregates a whole run.
type Stats struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesWithIssues int `json:"files_with_issues"`
	FilesFailed     int `json:"files_failed"`
	TotalFindings   int `json:"total_findings"`
	FixesApplied    int `json:"fixes_applied"`
	FixesSkipped    int `json:"fixes_skipped"`
	RuleFaults      int `json:"rule_faults"`
}

// Result is the aggregate outcome of a run, in discovery order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasIssues returns true if any document produced findings.
func (r *Result) HasIssues() bool {
	return r.Stats.TotalFindings > 0
}

// HasFailures returns true if any document failed to process.
func (r *Result) HasFailures() bool {
	return r.Stats.FilesFailed > 0
}

// accumulate folds one outcome into the aggregate.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.Stats.FilesFailed++
		return
	}
	if outcome.Result == nil {
		return
	}

	if outcome.Result.HasIssues() {
		r.Stats.FilesWithIssues++
	}
	r.Stats.TotalFindings += len(outcome.Result.Findings)
	r.Stats.RuleFaults += len(outcome.Result.Faults)
	r.Stats.FixesApplied += len(outcome.Applied)
	r.Stats.FixesSkipped += len(outcome.Skipped)
}
