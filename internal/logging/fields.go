package logging

// Field name constants for structured logging.
// Using constants prevents typos across call sites.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldPaths = "paths"
	FieldFiles = "files"

	// Configuration fields.
	FieldFix    = "fix"
	FieldDryRun = "dry_run"
	FieldJobs   = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesWithIssues = "files_with_issues"
	FieldFindingsTotal   = "findings_total"
	FieldFixesApplied    = "fixes_applied"
	FieldFixesSkipped    = "fixes_skipped"
	FieldRuleFaults      = "rule_faults"

	// Rule fields.
	FieldRule        = "rule"
	FieldSeverity    = "severity"
	FieldSpan        = "span"
	FieldFixable     = "fixable"
	FieldDescription = "description"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
