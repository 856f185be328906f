package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flintlabs/flint/internal/ui/pretty"
	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/runner"
)

// ErrIssuesFound signals that analysis succeeded but produced
// findings; main maps it to ExitIssues.
var ErrIssuesFound = errors.New("issues found")

// ErrFilesFailed signals that some documents could not be processed.
var ErrFilesFailed = errors.New("files failed")

// reportResult renders a run and returns the exit-code sentinel.
func reportResult(
	cmd *cobra.Command,
	global *globalOptions,
	cfg *config.Config,
	result *runner.Result,
) error {
	out := cmd.OutOrStdout()

	switch cfg.Format {
	case config.FormatJSON:
		if err := writeJSON(cmd, result); err != nil {
			return err
		}
	default:
		styles := pretty.NewStyles(pretty.ColorEnabled(global.color, out))
		writeText(cmd, styles, result)
	}

	switch {
	case result.HasFailures():
		return ErrFilesFailed
	case result.HasIssues():
		return ErrIssuesFound
	default:
		return nil
	}
}

// writeText renders findings grouped by file, then the summary line.
func writeText(cmd *cobra.Command, styles *pretty.Styles, result *runner.Result) {
	out := cmd.OutOrStdout()

	for _, file := range result.Files {
		if file.Err != nil {
			fmt.Fprintf(out, "%s  %s\n",
				styles.FormatFileHeader(file.Path, 0),
				styles.Failure.Render(file.Err.Error()))
			continue
		}
		if file.Result == nil || !file.Result.HasIssues() {
			continue
		}

		doc := file.Result.Doc
		fmt.Fprintln(out, styles.FormatFileHeader(file.Path, len(file.Result.Findings)))
		for i := range file.Result.Findings {
			fmt.Fprint(out, styles.FormatFinding(&file.Result.Findings[i], doc))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprint(out, styles.FormatSummary(result.Stats))
}

// jsonFinding is the machine-readable finding shape.
type jsonFinding struct {
	Rule     string `json:"rule"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Path     string `json:"path"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Fixable  bool   `json:"fixable"`
}

// jsonReport is the machine-readable run shape.
type jsonReport struct {
	Findings []jsonFinding `json:"findings"`
	Stats    runner.Stats  `json:"stats"`
}

// writeJSON renders the run as a single JSON document.
func writeJSON(cmd *cobra.Command, result *runner.Result) error {
	report := jsonReport{Findings: []jsonFinding{}, Stats: result.Stats}

	for _, file := range result.Files {
		if file.Result == nil {
			continue
		}
		for i := range file.Result.Findings {
			f := &file.Result.Findings[i]
			report.Findings = append(report.Findings, jsonFinding{
				Rule:     f.RuleID,
				Name:     f.RuleName,
				Severity: string(f.Severity),
				Message:  f.Message,
				Path:     f.Path,
				Start:    f.Span.Start,
				End:      f.Span.End,
				Fixable:  f.HasFix(),
			})
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
