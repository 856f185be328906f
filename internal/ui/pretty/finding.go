package pretty

import (
	"fmt"
	"strings"

	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/lint"
	"github.com/flintlabs/flint/pkg/runner"
	"github.com/flintlabs/flint/pkg/syntax"
)

// FormatFinding formats a single finding for terminal output.
// The doc supplies line/column mapping when it carries source text;
// otherwise the raw byte span is shown.
func (s *Styles) FormatFinding(finding *lint.Finding, doc *syntax.Document) string {
	var builder strings.Builder

	location := s.FilePath.Render(finding.Path) + s.Location.Render(spanLabel(finding.Span, doc))
	severity := s.FormatSeverity(finding.Severity)
	ruleDisplay := s.RuleID.Render("(" + finding.RuleID + "/" + finding.RuleName + ")")

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s",
		location,
		severity,
		s.Message.Render(finding.Message),
		ruleDisplay,
	))
	if finding.HasFix() {
		builder.WriteString("  " + s.Fixable.Render("[fixable]"))
	}
	builder.WriteString("\n")

	if finding.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(finding.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}

// FormatSummary renders the aggregate line for a whole run.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	if stats.TotalFindings == 0 && stats.FilesFailed == 0 {
		return s.Success.Render("✓") +
			fmt.Sprintf(" %d files analyzed, no issues found\n", stats.FilesDiscovered)
	}

	line := fmt.Sprintf("%d files analyzed, %d issues in %d files",
		stats.FilesDiscovered, stats.TotalFindings, stats.FilesWithIssues)
	if stats.FixesApplied > 0 || stats.FixesSkipped > 0 {
		line += fmt.Sprintf(", %d fixes applied, %d skipped",
			stats.FixesApplied, stats.FixesSkipped)
	}
	if stats.FilesFailed > 0 {
		line += fmt.Sprintf(", %d files failed", stats.FilesFailed)
	}
	if stats.RuleFaults > 0 {
		line += fmt.Sprintf(", %d rule faults", stats.RuleFaults)
	}

	marker := s.Failure.Render("✗")
	if stats.TotalFindings == 0 {
		marker = s.Warning.Render("!")
	}
	return marker + " " + line + "\n"
}

// spanLabel renders a finding span as :line:col when the document can
// map offsets, and as :#start-end otherwise.
func spanLabel(span syntax.Span, doc *syntax.Document) string {
	if doc != nil {
		if pos := doc.PositionAt(span.Start); pos.IsValid() {
			return fmt.Sprintf(":%d:%d", pos.Line, pos.Column)
		}
	}
	return fmt.Sprintf(":#%d-%d", span.Start, span.End)
}
